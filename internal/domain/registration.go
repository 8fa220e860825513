package domain

import (
	"context"
	"strings"
	"time"
)

// PaymentStatusPending is the status every new registration is stored with.
const PaymentStatusPending = "pending"

// PersistenceMode tells which registration store variant the process runs with.
type PersistenceMode string

const (
	PersistenceModeLive PersistenceMode = "live"
	PersistenceModeMock PersistenceMode = "mock"
)

// RegistrationSubmission is the payload a visitor sends once payment has been confirmed.
// swagger:model RegistrationSubmission
type RegistrationSubmission struct {
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	College        string  `json:"college"`
	Department     string  `json:"department"`
	Year           string  `json:"year"`
	SelectedEvents []Event `json:"selectedEvents"`
	TotalFee       int     `json:"totalFee"`
	TransactionID  string  `json:"transactionId,omitempty"`
}

// Normalize trims surrounding whitespace from the free-text fields.
func (s *RegistrationSubmission) Normalize() {
	s.FullName = strings.TrimSpace(s.FullName)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.College = strings.TrimSpace(s.College)
	s.Department = strings.TrimSpace(s.Department)
	s.Year = strings.TrimSpace(s.Year)
	s.TransactionID = strings.TrimSpace(s.TransactionID)
}

// Validate reports the required fields that are missing. Field formats are not checked.
func (s *RegistrationSubmission) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(s.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if len(s.SelectedEvents) == 0 {
		errs = append(errs, "at least one event required")
	}
	return errs
}

// RegistrationRecord is a stored registration.
// swagger:model RegistrationRecord
type RegistrationRecord struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	College       string    `json:"college"`
	Department    string    `json:"department"`
	Year          string    `json:"year"`
	Events        []Event   `json:"events"`
	TotalFee      int       `json:"total_fee"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewRegistrationRecord maps a submission onto a record with a pending payment status.
// ID is typically set by the store on create.
func NewRegistrationRecord(sub *RegistrationSubmission, createdAt time.Time) *RegistrationRecord {
	events := make([]Event, len(sub.SelectedEvents))
	copy(events, sub.SelectedEvents)
	return &RegistrationRecord{
		FullName:      sub.FullName,
		Email:         sub.Email,
		Phone:         sub.Phone,
		College:       sub.College,
		Department:    sub.Department,
		Year:          sub.Year,
		Events:        events,
		TotalFee:      sub.TotalFee,
		TransactionID: sub.TransactionID,
		PaymentStatus: PaymentStatusPending,
		CreatedAt:     createdAt,
	}
}

// EventNames returns the names of the registered events in order.
func (r *RegistrationRecord) EventNames() []string {
	names := make([]string, len(r.Events))
	for i, e := range r.Events {
		names[i] = e.Name
	}
	return names
}

// RegistrationStore persists registrations. Exactly one variant is chosen at startup.
type RegistrationStore interface {
	Mode() PersistenceMode
	Create(ctx context.Context, rec *RegistrationRecord) error
}

// RegistrationNotifier hands a stored registration off for confirmation.
// Dispatch must not block and never reports delivery failures to the caller.
type RegistrationNotifier interface {
	Dispatch(rec *RegistrationRecord)
}

// RegistrationOutcome describes a successful registration.
type RegistrationOutcome struct {
	Mode       PersistenceMode
	Record     *RegistrationRecord
	Submission *RegistrationSubmission
}

// RegistrationService handles incoming registration submissions.
type RegistrationService interface {
	Register(ctx context.Context, sub *RegistrationSubmission) (*RegistrationOutcome, error)
}
