package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationConfirmationEmailData holds data for the mail sent to a new registrant.
type RegistrationConfirmationEmailData struct {
	Participant   *Participant
	Seminar       *SeminarSummary
	StartsAt      string
	UnregisterURL string
}

// RegistrationDigestEmailData holds data for the admin mail listing all current participants.
type RegistrationDigestEmailData struct {
	NewParticipant *Participant
	Seminar        *SeminarSummary
	StartsAt       string
	Participants   []*Participant
}

// ContactForm is a message submitted through the public contact form.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactFormEmailData holds data for the contact form mail to the admin.
type ContactFormEmailData struct {
	Form       ContactForm
	ReceivedAt string
}

// EmailService defines the domain-level mails.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
	SendRegistrationDigest(ctx context.Context, data *RegistrationDigestEmailData) error
	SendContactForm(ctx context.Context, data *ContactFormEmailData) error
}

// ContactService forwards contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, form ContactForm) error
}
