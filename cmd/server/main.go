// Command server runs the fest registration API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"altranzfest/config"
	_ "altranzfest/docs"
	"altranzfest/internal/adapters/email"
	deliveryhttp "altranzfest/internal/delivery/http"
	"altranzfest/internal/delivery/http/controllers"
	"altranzfest/internal/domain"
	"altranzfest/internal/notify"
	"altranzfest/internal/platform/metrics"
	"altranzfest/internal/repository/memory"
	"altranzfest/internal/repository/mockstore"
	"altranzfest/internal/repository/postgres"
	"altranzfest/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newRegistrationStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
		SMTP: email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.User,
			Password: cfg.Email.Password,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("email templates: %w", err)
	}
	emailService := services.NewEmailService(logger, mailer, renderer)

	m := metrics.New(prometheus.DefaultRegisterer)

	// Workers outlive the signal context so queued confirmations drain on shutdown.
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	dispatcher := notify.NewDispatcher(emailService, logger,
		notify.WithWorkers(cfg.Notify.Workers),
		notify.WithQueueSize(cfg.Notify.QueueSize),
		notify.WithSendTimeout(cfg.Notify.SendTimeout),
		notify.WithMetrics(m),
	)
	if err := dispatcher.Start(workerCtx); err != nil {
		return fmt.Errorf("start dispatcher: %w", err)
	}

	catalog := memory.NewEventCatalog()
	registrationService := services.NewRegistrationService(logger, store, catalog, dispatcher, services.WithMetrics(m))

	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Catalog:        controllers.NewCatalogController(logger, services.NewCatalogService(catalog)),
		Registration:   controllers.NewRegistrationController(logger, registrationService),
		Health:         controllers.NewHealthController(store.Mode()),
		Metrics:        promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", srv.Addr, "persistence", store.Mode(), "email_provider", cfg.Email.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if stopErr := dispatcher.Stop(shutdownTimeout); stopErr != nil {
			logger.Warn("notification queue not drained", "err", stopErr)
		}
		return err
	})
	return g.Wait()
}

// newRegistrationStore picks the live store when datastore credentials are
// configured and the mock store otherwise. The choice is fixed for the process.
func newRegistrationStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.RegistrationStore, func(), error) {
	if !cfg.Datastore.Configured() {
		logger.Warn("datastore credentials missing or placeholder; registrations will not be stored")
		return mockstore.NewRegistrationRepository(logger), func() {}, nil
	}

	dsn, err := cfg.Datastore.DSN()
	if err != nil {
		return nil, nil, err
	}
	db, err := postgres.Open(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open datastore: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}
	return postgres.NewRegistrationRepository(db), closer(db, logger), nil
}

func closer(db *sql.DB, logger *slog.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("close datastore", "err", err)
		}
	}
}
