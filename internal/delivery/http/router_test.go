package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"altranzfest/internal/delivery/http/controllers"
	"altranzfest/internal/domain"
	"altranzfest/internal/platform/metrics"
	"altranzfest/internal/repository/memory"
	"altranzfest/internal/repository/mockstore"
	"altranzfest/internal/services"
)

func newTestRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	catalog := memory.NewEventCatalog()
	store := mockstore.NewRegistrationRepository(logger)

	return NewRouter(RouterConfig{
		Logger:         logger,
		AllowedOrigins: []string{"*"},
		Catalog:        controllers.NewCatalogController(logger, services.NewCatalogService(catalog)),
		Registration: controllers.NewRegistrationController(logger,
			services.NewRegistrationService(logger, store, catalog, nil, services.WithMetrics(m))),
		Health:  controllers.NewHealthController(store.Mode()),
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}), m
}

func TestRouter_Routes(t *testing.T) {
	h, _ := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"events", http.MethodGet, "/api/events", "", http.StatusOK, `"Hackathon"`},
		{"events filtered", http.MethodGet, "/api/events?type=Workshop", "", http.StatusOK, `"AI/ML Workshop"`},
		{"health", http.MethodGet, "/health", "", http.StatusOK, `"persistence":"mock"`},
		{"register mock", http.MethodPost, "/api/register",
			`{"fullName":"Asha","email":"a@example.com","phone":"1","selectedEvents":[{"id":1,"name":"Hackathon","type":"Technical","fee":150},{"id":4,"name":"Treasure Hunt","type":"Non-Technical","fee":80}],"totalFee":230,"transactionId":"TXN123"}`,
			http.StatusCreated, `"Registration successful (MOCK)"`},
		{"register invalid", http.MethodPost, "/api/register", `{"fullName":"Asha","selectedEvents":[]}`, http.StatusBadRequest, `"error"`},
		{"wrong method", http.MethodGet, "/api/register", "", http.StatusMethodNotAllowed, ""},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK, "fest_registrations"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			assert.Contains(t, rr.Body.String(), tt.wantBody)
		})
	}
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewRouter(RouterConfig{
		Logger:       logger,
		Catalog:      controllers.NewCatalogController(logger, panickingCatalog{}),
		Registration: controllers.NewRegistrationController(logger, nil),
		Health:       controllers.NewHealthController(domain.PersistenceModeLive),
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

type panickingCatalog struct{}

func (panickingCatalog) ListEvents(context.Context, domain.EventType) (domain.Catalog, error) {
	panic("catalog exploded")
}
