package domain

import (
	"context"
	"io"
	"time"
)

// Participant is a registrant bound to exactly one seminar. Token is the opaque
// value used in the unregistration link and is unique across all participants.
// swagger:model Participant
type Participant struct {
	ID        string    `json:"id"`
	SeminarID string    `json:"seminar_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Remarks   *string   `json:"remarks"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName returns "first last".
func (p *Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ParticipantInfo is what a registrant submits.
type ParticipantInfo struct {
	FirstName string
	LastName  string
	Email     string
	Remarks   *string
}

// RegistrationResult is returned by a successful registration.
// swagger:model RegistrationResult
type RegistrationResult struct {
	ParticipantID   string `json:"participant_id"`
	SeminarID       string `json:"seminar_id"`
	UnregisterToken string `json:"unregister_token"`
}

// ParticipantRepository defines storage for participants.
type ParticipantRepository interface {
	Create(ctx context.Context, p *Participant) error
	GetByToken(ctx context.Context, token string) (*Participant, error)
	ListBySeminarID(ctx context.Context, seminarID string) ([]*Participant, error)
	DeleteByToken(ctx context.Context, token string) error
}

// RegistrationService enforces the registration rules for seminars.
type RegistrationService interface {
	// Register binds a new participant to the seminar. When the participant was
	// stored but a notification failed, the result is returned together with an
	// error wrapping ErrNotificationFailure.
	Register(ctx context.Context, seminarID string, info ParticipantInfo) (*RegistrationResult, error)
	Unregister(ctx context.Context, token string) error
	ListParticipants(ctx context.Context, seminarID string) ([]*Participant, error)
	// WriteParticipantSheet renders the printable participant list of a seminar.
	WriteParticipantSheet(ctx context.Context, seminarID string, w io.Writer) error
}

// ParticipantSheetRenderer renders a printable participant list.
type ParticipantSheetRenderer interface {
	Render(w io.Writer, seminar *SeminarSummary, participants []*Participant) error
}
