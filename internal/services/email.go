package services

import (
	"context"
	"fmt"
	"log/slog"

	"altranzfest/internal/domain"
)

const registrationConfirmationTemplate = "registration_confirmation"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRegistrationConfirmation renders the "registration_confirmation" template and mails it to the registrant.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(registrationConfirmationTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", registrationConfirmationTemplate, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration confirmation: %w", err)
	}
	s.logger.InfoContext(ctx, "registration confirmation sent", "to", data.Email, "registration_id", data.RegistrationID)
	return nil
}
