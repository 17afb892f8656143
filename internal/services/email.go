package services

import (
	"context"
	"fmt"
	"log/slog"

	"seminarmanager/internal/domain"
)

type emailService struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	adminEmail string
	logger     *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
// Digest and contact form mails go to adminEmail.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, adminEmail string, logger *slog.Logger) domain.EmailService {
	return &emailService{
		mailer:     mailer,
		renderer:   renderer,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// SendRegistrationConfirmation mails the registrant using the "registration_confirmation" template.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if data == nil || data.Participant == nil {
		return fmt.Errorf("registration confirmation data is nil")
	}
	return s.send(ctx, "registration_confirmation", data.Participant.Email, data)
}

// SendRegistrationDigest mails the admin the current participant list using the "registration_digest" template.
func (s *emailService) SendRegistrationDigest(ctx context.Context, data *domain.RegistrationDigestEmailData) error {
	if data == nil {
		return fmt.Errorf("registration digest data is nil")
	}
	return s.send(ctx, "registration_digest", s.adminEmail, data)
}

// SendContactForm forwards a contact form submission to the admin.
func (s *emailService) SendContactForm(ctx context.Context, data *domain.ContactFormEmailData) error {
	if data == nil {
		return fmt.Errorf("contact form data is nil")
	}
	return s.send(ctx, "contact_form", s.adminEmail, data)
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	if to == "" {
		return fmt.Errorf("no recipient for %s email", template)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	s.logger.InfoContext(ctx, "email sent", "template", template)
	return nil
}
