package email

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMailer_providers(t *testing.T) {
	tests := []struct {
		name    string
		config  MailerConfig
		want    any
		wantErr bool
	}{
		{"noop", MailerConfig{Provider: "noop"}, &noopMailer{}, false},
		{"unknown falls back to noop", MailerConfig{Provider: "carrier-pigeon"}, &noopMailer{}, false},
		{"ses", MailerConfig{Provider: "ses", FromAddress: "a@example.com", SES: SESConfig{Region: "eu-central-1"}}, &sesMailer{}, false},
		{"resend", MailerConfig{Provider: "resend", Resend: ResendConfig{APIKey: "re_test"}}, &resendMailer{}, false},
		{"resend without key", MailerConfig{Provider: "resend"}, nil, true},
		{"smtp", MailerConfig{Provider: "smtp", SMTP: SMTPConfig{Host: "smtp.example.com", Port: 465}}, &smtpMailer{}, false},
		{"smtp without host", MailerConfig{Provider: "smtp"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, discardLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, m)
		})
	}
}

func TestNoopMailer_Send(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, discardLogger())
	require.NoError(t, err)
	assert.NoError(t, m.Send(context.Background(), "a@example.com", "s", "<p>h</p>", "t"))
}

func TestMailerConfig_source(t *testing.T) {
	assert.Equal(t, `"Seminare" <info@example.com>`, MailerConfig{FromAddress: "info@example.com", FromName: "Seminare"}.source())
	assert.Equal(t, "info@example.com", MailerConfig{FromAddress: "info@example.com"}.source())

	encoded := MailerConfig{FromAddress: "info@example.com", FromName: "Seminare Müller"}.source()
	assert.Equal(t, "=?utf-8?q?Seminare_M=C3=BCller?= <info@example.com>", encoded)

	msg, err := buildMessage(encoded, "ada@example.com", "Hallo", "", "hi")
	require.NoError(t, err)
	assert.Contains(t, string(msg), "From: =?utf-8?q?Seminare_M=C3=BCller?= <info@example.com>\r\n")
	assert.NotContains(t, string(msg), "Müller")
}

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("info@example.com", "ada@example.com", "Anmeldebestätigung", "<p>hi</p>", "hi")
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "From: info@example.com\r\n"))
	assert.Contains(t, s, "To: ada@example.com\r\n")
	assert.Contains(t, s, "Subject: =?UTF-8?q?")
	assert.Contains(t, s, "multipart/alternative")
	assert.Contains(t, s, "text/plain; charset=UTF-8")
	assert.Contains(t, s, "<p>hi</p>")
}

func TestSMTPMailer_rejects_header_injection(t *testing.T) {
	m := &smtpMailer{config: SMTPConfig{Host: "smtp.example.com", Port: 465}, logger: discardLogger()}
	err := m.Send(context.Background(), "victim@example.com\r\nBcc: x@example.com", "s", "", "t")
	assert.Error(t, err)
}
