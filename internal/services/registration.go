package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"altranzfest/internal/domain"
	"altranzfest/internal/platform/metrics"
)

// Rejection reasons reported to metrics.
const (
	rejectValidation  = "validation"
	rejectCatalog     = "catalog"
	rejectPersistence = "persistence"
)

type registrationService struct {
	store    domain.RegistrationStore
	catalog  domain.EventCatalog
	notifier domain.RegistrationNotifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// RegistrationOption configures optional collaborators of the registration service.
type RegistrationOption func(*registrationService)

// WithMetrics records accepted and rejected registrations.
func WithMetrics(m *metrics.Metrics) RegistrationOption {
	return func(s *registrationService) { s.metrics = m }
}

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) RegistrationOption {
	return func(s *registrationService) { s.now = now }
}

// NewRegistrationService returns a RegistrationService that persists through store.
// notifier may be nil, in which case no confirmation is dispatched.
func NewRegistrationService(logger *slog.Logger, store domain.RegistrationStore, catalog domain.EventCatalog, notifier domain.RegistrationNotifier, opts ...RegistrationOption) domain.RegistrationService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &registrationService{
		store:    store,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates sub, resolves its events against the catalog and persists it.
// A confirmation is dispatched only when the store is live.
func (s *registrationService) Register(ctx context.Context, sub *domain.RegistrationSubmission) (*domain.RegistrationOutcome, error) {
	if sub == nil {
		s.metrics.IncRegistrationRejected(rejectValidation)
		return nil, domain.NewValidationError("registration payload is required")
	}
	sub.Normalize()
	if problems := sub.Validate(); len(problems) > 0 {
		s.metrics.IncRegistrationRejected(rejectValidation)
		return nil, domain.NewValidationError(problems...)
	}

	events, err := s.resolveEvents(ctx, sub)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.metrics.IncRegistrationRejected(rejectCatalog)
		}
		return nil, err
	}
	sub.SelectedEvents = events

	rec := domain.NewRegistrationRecord(sub, s.now().UTC())
	if err := s.store.Create(ctx, rec); err != nil {
		s.metrics.IncRegistrationRejected(rejectPersistence)
		return nil, fmt.Errorf("%w: create registration: %v", domain.ErrPersistence, err)
	}

	mode := s.store.Mode()
	s.metrics.IncRegistrationCreated(string(mode))
	s.logger.InfoContext(ctx, "registration stored",
		"id", rec.ID,
		"mode", mode,
		"events", len(rec.Events),
		"total_fee", rec.TotalFee,
	)

	if mode == domain.PersistenceModeLive && s.notifier != nil {
		s.notifier.Dispatch(rec)
	}

	return &domain.RegistrationOutcome{Mode: mode, Record: rec, Submission: sub}, nil
}

// resolveEvents replaces the submitted events with their catalog entries and
// checks the submitted total against the catalog fees.
func (s *registrationService) resolveEvents(ctx context.Context, sub *domain.RegistrationSubmission) ([]domain.Event, error) {
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var problems []string
	seen := make(map[int]bool, len(sub.SelectedEvents))
	resolved := make([]domain.Event, 0, len(sub.SelectedEvents))
	total := 0
	for _, e := range sub.SelectedEvents {
		if seen[e.ID] {
			problems = append(problems, fmt.Sprintf("event %d selected more than once", e.ID))
			continue
		}
		seen[e.ID] = true
		ev, ok := catalog.Find(e.ID)
		if !ok {
			problems = append(problems, fmt.Sprintf("unknown event %d", e.ID))
			continue
		}
		resolved = append(resolved, ev)
		total += ev.Fee
	}
	if len(problems) == 0 && sub.TotalFee != total {
		problems = append(problems, fmt.Sprintf("totalFee %d does not match selected events (%d)", sub.TotalFee, total))
	}
	if len(problems) > 0 {
		return nil, domain.NewValidationError(problems...)
	}
	return resolved, nil
}
