package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"seminarmanager/internal/domain"
)

const participantColumns = `id, seminar_id, first_name, last_name, email, remarks, token, created_at`

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{
		DB: db,
	}
}

// Create stores the participant. A token already held by another participant
// fails with domain.ErrConflict; an unknown seminar fails with domain.ErrValidation.
func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `
		INSERT INTO participants (` + participantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.SeminarID, p.FirstName, p.LastName, p.Email, nullable(p.Remarks), p.Token, p.CreatedAt.UTC(),
	)
	return mapError(err)
}

func (r *participantRepository) GetByToken(ctx context.Context, token string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE token = $1`
	p, err := scanParticipant(r.DB.QueryRowContext(ctx, query, token))
	if err != nil {
		return nil, mapError(err)
	}
	return p, nil
}

func (r *participantRepository) ListBySeminarID(ctx context.Context, seminarID string) ([]*domain.Participant, error) {
	query := `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE seminar_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, seminarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) DeleteByToken(ctx context.Context, token string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM participants WHERE token = $1`, token)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(result)
}

func scanParticipant(row rowScanner) (*domain.Participant, error) {
	p := &domain.Participant{}
	var remarks sql.NullString
	if err := row.Scan(&p.ID, &p.SeminarID, &p.FirstName, &p.LastName, &p.Email, &remarks, &p.Token, &p.CreatedAt); err != nil {
		return nil, err
	}
	if remarks.Valid {
		p.Remarks = &remarks.String
	}
	return p, nil
}
