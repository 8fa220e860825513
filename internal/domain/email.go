package domain

//go:generate mockgen -source=email.go -destination=mocks/email_mocks.go -package=mocks Mailer,EmailTemplateRenderer,EmailService

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationConfirmationEmailData holds data for the registration confirmation email.
type RegistrationConfirmationEmailData struct {
	Email          string
	FullName       string
	RegistrationID string
	EventNames     []string
	TotalFee       int
	TransactionID  string
}

// NewRegistrationConfirmationEmailData builds the email data for a stored registration.
func NewRegistrationConfirmationEmailData(rec *RegistrationRecord) *RegistrationConfirmationEmailData {
	return &RegistrationConfirmationEmailData{
		Email:          rec.Email,
		FullName:       rec.FullName,
		RegistrationID: rec.ID,
		EventNames:     rec.EventNames(),
		TotalFee:       rec.TotalFee,
		TransactionID:  rec.TransactionID,
	}
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
}
