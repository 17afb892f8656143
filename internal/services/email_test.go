package services

import (
	"context"
	"errors"
	"testing"

	"seminarmanager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailService_recipients(t *testing.T) {
	ctx := context.Background()
	participant := &domain.Participant{Email: "ada@example.org"}

	tests := []struct {
		name     string
		send     func(domain.EmailService) error
		wantTo   string
		wantName string
	}{
		{
			name: "confirmation goes to participant",
			send: func(s domain.EmailService) error {
				return s.SendRegistrationConfirmation(ctx, &domain.RegistrationConfirmationEmailData{Participant: participant})
			},
			wantTo:   "ada@example.org",
			wantName: "registration_confirmation",
		},
		{
			name: "digest goes to admin",
			send: func(s domain.EmailService) error {
				return s.SendRegistrationDigest(ctx, &domain.RegistrationDigestEmailData{NewParticipant: participant})
			},
			wantTo:   "admin@example.org",
			wantName: "registration_digest",
		},
		{
			name: "contact form goes to admin",
			send: func(s domain.EmailService) error {
				return s.SendContactForm(ctx, &domain.ContactFormEmailData{})
			},
			wantTo:   "admin@example.org",
			wantName: "contact_form",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &mockMailer{}
			renderer := &mockRenderer{}
			svc := NewEmailService(mailer, renderer, "admin@example.org", discardLogger())

			require.NoError(t, tt.send(svc))
			assert.Equal(t, tt.wantTo, mailer.to)
			assert.Equal(t, tt.wantName, renderer.name)
			assert.Equal(t, "subject "+tt.wantName, mailer.subject)
		})
	}
}

func TestEmailService_errors(t *testing.T) {
	ctx := context.Background()

	svc := NewEmailService(&mockMailer{}, &mockRenderer{}, "admin@example.org", discardLogger())
	assert.Error(t, svc.SendRegistrationConfirmation(ctx, nil))
	assert.Error(t, svc.SendRegistrationDigest(ctx, nil))
	assert.Error(t, svc.SendContactForm(ctx, nil))

	sendErr := errors.New("smtp down")
	svc = NewEmailService(&mockMailer{err: sendErr}, &mockRenderer{}, "admin@example.org", discardLogger())
	assert.ErrorIs(t, svc.SendContactForm(ctx, &domain.ContactFormEmailData{}), sendErr)

	renderErr := errors.New("bad template")
	svc = NewEmailService(&mockMailer{}, &mockRenderer{err: renderErr}, "admin@example.org", discardLogger())
	assert.ErrorIs(t, svc.SendContactForm(ctx, &domain.ContactFormEmailData{}), renderErr)

	svc = NewEmailService(&mockMailer{}, &mockRenderer{}, "", discardLogger())
	assert.Error(t, svc.SendContactForm(ctx, &domain.ContactFormEmailData{}))
}
