package http

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"altranzfest/internal/delivery/http/controllers"
	"altranzfest/internal/delivery/http/middleware"
)

// RouterConfig carries the controllers and cross-cutting settings for NewRouter.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	Catalog        *controllers.CatalogController
	Registration   *controllers.RegistrationController
	Health         *controllers.HealthController
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /api/events", cfg.Catalog.ListEvents)
	mux.HandleFunc("POST /api/register", cfg.Registration.Register)

	// Operations
	mux.HandleFunc("GET /health", cfg.Health.Health)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = middleware.CORS(cfg.AllowedOrigins, h)
	h = chimiddleware.Recoverer(h)
	h = middleware.LoggingMiddleware(cfg.Logger, h)
	h = chimiddleware.RealIP(h)
	h = chimiddleware.RequestID(h)
	return h
}
