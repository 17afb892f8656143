package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"seminarmanager/internal/domain"
	"seminarmanager/internal/metrics"
	"seminarmanager/internal/sanitize"
)

type contactService struct {
	emailService domain.EmailService
	clock        domain.Clock
	location     *time.Location
	logger       *slog.Logger
}

// NewContactService forwards contact form submissions to the admin mailbox.
func NewContactService(emailService domain.EmailService, clock domain.Clock, location *time.Location, logger *slog.Logger) domain.ContactService {
	if location == nil {
		location = time.UTC
	}
	return &contactService{
		emailService: emailService,
		clock:        clock,
		location:     location,
		logger:       logger,
	}
}

func (s *contactService) Submit(ctx context.Context, form domain.ContactForm) error {
	clean := domain.ContactForm{
		Name:    sanitize.Text(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Subject: sanitize.Text(form.Subject),
		Message: sanitize.Text(form.Message),
	}
	if clean.Name == "" || clean.Message == "" {
		return fmt.Errorf("%w: name and message are required", domain.ErrValidation)
	}
	data := &domain.ContactFormEmailData{
		Form:       clean,
		ReceivedAt: s.clock.Now().In(s.location).Format(startsAtLayout),
	}
	if err := s.emailService.SendContactForm(ctx, data); err != nil {
		metrics.NotificationFailuresTotal.WithLabelValues("contact").Inc()
		s.logger.ErrorContext(ctx, "notification failed", "kind", "contact", "err", err)
		return fmt.Errorf("%w: %w", domain.ErrNotificationFailure, err)
	}
	return nil
}
