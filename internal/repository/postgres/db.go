package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Open connects to postgres with pool settings suited to a small service and
// verifies the connection before returning.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

const registrationsSchema = `
	CREATE TABLE IF NOT EXISTS registrations (
		id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		full_name      TEXT NOT NULL,
		email          TEXT NOT NULL,
		phone          TEXT NOT NULL,
		college        TEXT NOT NULL DEFAULT '',
		department     TEXT NOT NULL DEFAULT '',
		year           TEXT NOT NULL DEFAULT '',
		events         JSONB NOT NULL,
		total_fee      INTEGER NOT NULL,
		transaction_id TEXT,
		payment_status TEXT NOT NULL DEFAULT 'pending',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// EnsureSchema creates the registrations table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, registrationsSchema); err != nil {
		return fmt.Errorf("create registrations table: %w", err)
	}
	return nil
}
