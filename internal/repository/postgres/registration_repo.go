package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"altranzfest/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns the live RegistrationStore backed by postgres.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationStore {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) Mode() domain.PersistenceMode {
	return domain.PersistenceModeLive
}

// Create inserts the registration and fills in the server-generated id,
// payment status and creation time.
func (r *registrationRepository) Create(ctx context.Context, rec *domain.RegistrationRecord) error {
	events, err := json.Marshal(rec.Events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	txn := sql.NullString{String: rec.TransactionID, Valid: rec.TransactionID != ""}

	query := `
		INSERT INTO registrations (full_name, email, phone, college, department, year, events, total_fee, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9)
		RETURNING id, payment_status, created_at
	`
	err = r.DB.QueryRowContext(ctx, query,
		rec.FullName, rec.Email, rec.Phone, rec.College, rec.Department, rec.Year,
		string(events), rec.TotalFee, txn,
	).Scan(&rec.ID, &rec.PaymentStatus, &rec.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("insert registration (%s): %w", pqErr.Code.Name(), err)
		}
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}
