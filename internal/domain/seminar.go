package domain

import (
	"context"
	"time"
)

// RegistrationCutoff is how long before a seminar starts registration closes.
const RegistrationCutoff = time.Hour

// Seminar is a scheduled event participants can register for.
// swagger:model Seminar
type Seminar struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartsAt        time.Time `json:"starts_at"`
	URL             *string   `json:"url"`
	MaxParticipants *int      `json:"max_participants"`
	Price           *float64  `json:"price"`
	ImageName       *string   `json:"image_name"`
	LocationID      *string   `json:"location_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RegistrationOpen reports whether the seminar still accepts registrations at now.
func (s *Seminar) RegistrationOpen(now time.Time) bool {
	return now.Before(s.StartsAt.Add(-RegistrationCutoff))
}

// SeminarSummary is a seminar annotated with its live participant count and resolved location.
// swagger:model SeminarSummary
type SeminarSummary struct {
	Seminar
	ParticipantsCount int       `json:"participants_count"`
	Location          *Location `json:"location"`
}

// SeminarInput carries the admin-editable fields of a Seminar.
type SeminarInput struct {
	Title           string
	Description     string
	StartsAt        time.Time
	URL             *string
	MaxParticipants *int
	Price           *float64
	ImageName       *string
	LocationID      *string
}

// SeminarRepository defines storage for seminars. Deleting a seminar deletes its participants.
type SeminarRepository interface {
	Create(ctx context.Context, s *Seminar) error
	GetByID(ctx context.Context, id string) (*Seminar, error)
	Update(ctx context.Context, s *Seminar) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	// ListSummaries returns seminars ordered by start time descending, each with its participant count.
	ListSummaries(ctx context.Context, page PaginationParams) ([]*SeminarSummary, error)
	GetSummary(ctx context.Context, id string) (*SeminarSummary, error)
}

// SeminarService defines the listing queries and admin CRUD for seminars.
type SeminarService interface {
	List(ctx context.Context, page PaginationParams) ([]*SeminarSummary, error)
	Get(ctx context.Context, id string) (*SeminarSummary, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, in SeminarInput) (*Seminar, error)
	Update(ctx context.Context, id string, in SeminarInput) (*Seminar, error)
	Delete(ctx context.Context, id string) error
}
