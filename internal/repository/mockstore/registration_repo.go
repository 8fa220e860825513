// Package mockstore is the registration store used when no datastore
// credentials are configured. It writes nothing and only logs what it receives.
package mockstore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"altranzfest/internal/domain"
)

type registrationRepository struct {
	logger *slog.Logger
}

// NewRegistrationRepository returns the mock RegistrationStore.
func NewRegistrationRepository(logger *slog.Logger) domain.RegistrationStore {
	return &registrationRepository{logger: logger}
}

func (r *registrationRepository) Mode() domain.PersistenceMode {
	return domain.PersistenceModeMock
}

// Create assigns a synthetic id and logs the payload.
func (r *registrationRepository) Create(ctx context.Context, rec *domain.RegistrationRecord) error {
	rec.ID = "mock-" + uuid.NewString()
	if rec.PaymentStatus == "" {
		rec.PaymentStatus = domain.PaymentStatusPending
	}
	r.logger.InfoContext(ctx, "mock mode: skipping datastore write",
		"id", rec.ID,
		"full_name", rec.FullName,
		"email", rec.Email,
		"phone", rec.Phone,
		"college", rec.College,
		"department", rec.Department,
		"year", rec.Year,
		"events", rec.EventNames(),
		"total_fee", rec.TotalFee,
		"transaction_id", rec.TransactionID,
	)
	return nil
}
