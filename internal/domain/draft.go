package domain

import (
	"context"
	"strings"
)

// RegistrationDraft carries a visitor's details and chosen events between the
// selection phase and the payment phase.
type RegistrationDraft struct {
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	College        string  `json:"college"`
	Department     string  `json:"department"`
	Year           string  `json:"year"`
	SelectedEvents []Event `json:"selectedEvents"`
	TotalFee       int     `json:"totalFee"`
}

// PaymentConfirmation is the transaction reference the visitor enters after paying.
type PaymentConfirmation struct {
	TransactionID string `json:"transactionId"`
}

// Validate requires a non-blank transaction id.
func (c PaymentConfirmation) Validate() []string {
	if strings.TrimSpace(c.TransactionID) == "" {
		return []string{"transactionId is required"}
	}
	return nil
}

// Submission merges the draft with the payment confirmation into the payload sent to the server.
func (d *RegistrationDraft) Submission(c PaymentConfirmation) *RegistrationSubmission {
	events := make([]Event, len(d.SelectedEvents))
	copy(events, d.SelectedEvents)
	return &RegistrationSubmission{
		FullName:       d.FullName,
		Email:          d.Email,
		Phone:          d.Phone,
		College:        d.College,
		Department:     d.Department,
		Year:           d.Year,
		SelectedEvents: events,
		TotalFee:       d.TotalFee,
		TransactionID:  strings.TrimSpace(c.TransactionID),
	}
}

// DraftStore holds at most one draft per browsing session.
// Load returns ErrDraftAbsent when the session has no draft.
type DraftStore interface {
	Save(ctx context.Context, sessionID string, draft *RegistrationDraft) error
	Load(ctx context.Context, sessionID string) (*RegistrationDraft, error)
	Clear(ctx context.Context, sessionID string) error
}
