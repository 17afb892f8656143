package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"seminarmanager/internal/domain"
)

const seminarColumns = `s.id, s.title, s.description, s.starts_at, s.url, s.max_participants, s.price, s.image_name, s.location_id, s.created_at, s.updated_at`

// summaryQuery annotates each seminar with its live participant count and its
// location. The count subquery yields 0 for seminars without participants.
const summaryQuery = `
	SELECT ` + seminarColumns + `,
		(SELECT COUNT(*) FROM participants p WHERE p.seminar_id = s.id) AS participants_count,
		l.id, l.name, l.street, l.house_number, l.zip_code, l.city, l.remarks, l.maps_url, l.created_at, l.updated_at
	FROM seminars s
	LEFT JOIN locations l ON l.id = s.location_id
`

type seminarRepository struct {
	DB *sql.DB
}

func NewSeminarRepository(db *sql.DB) domain.SeminarRepository {
	return &seminarRepository{
		DB: db,
	}
}

func (r *seminarRepository) Create(ctx context.Context, s *domain.Seminar) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `
		INSERT INTO seminars (id, title, description, starts_at, url, max_participants, price, image_name, location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Title, s.Description, s.StartsAt.UTC(), nullable(s.URL), nullable(s.MaxParticipants),
		nullable(s.Price), nullable(s.ImageName), nullable(s.LocationID), s.CreatedAt.UTC(), s.UpdatedAt.UTC(),
	)
	return mapError(err)
}

func (r *seminarRepository) GetByID(ctx context.Context, id string) (*domain.Seminar, error) {
	query := `SELECT ` + seminarColumns + ` FROM seminars s WHERE s.id = $1`
	s := &domain.Seminar{}
	if err := scanSeminar(r.DB.QueryRowContext(ctx, query, id), s); err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

func (r *seminarRepository) Update(ctx context.Context, s *domain.Seminar) error {
	query := `
		UPDATE seminars
		SET title = $1, description = $2, starts_at = $3, url = $4, max_participants = $5,
			price = $6, image_name = $7, location_id = $8, updated_at = $9
		WHERE id = $10
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.Title, s.Description, s.StartsAt.UTC(), nullable(s.URL), nullable(s.MaxParticipants),
		nullable(s.Price), nullable(s.ImageName), nullable(s.LocationID), s.UpdatedAt.UTC(), s.ID,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(result)
}

// Delete removes the seminar and, through the foreign key rule, its participants.
func (r *seminarRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM seminars WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(result)
}

func (r *seminarRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM seminars`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *seminarRepository) ListSummaries(ctx context.Context, page domain.PaginationParams) ([]*domain.SeminarSummary, error) {
	query := summaryQuery + `
		ORDER BY s.starts_at DESC, s.id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	summaries := make([]*domain.SeminarSummary, 0)
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func (r *seminarRepository) GetSummary(ctx context.Context, id string) (*domain.SeminarSummary, error) {
	summary, err := scanSummary(r.DB.QueryRowContext(ctx, summaryQuery+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return summary, nil
}

func seminarDest(s *domain.Seminar, url, imageName, locationID *sql.NullString, maxParticipants *sql.NullInt64, price *sql.NullFloat64) []any {
	return []any{
		&s.ID, &s.Title, &s.Description, &s.StartsAt, url, maxParticipants,
		price, imageName, locationID, &s.CreatedAt, &s.UpdatedAt,
	}
}

func applySeminarNulls(s *domain.Seminar, url, imageName, locationID sql.NullString, maxParticipants sql.NullInt64, price sql.NullFloat64) {
	if url.Valid {
		s.URL = &url.String
	}
	if imageName.Valid {
		s.ImageName = &imageName.String
	}
	if locationID.Valid {
		s.LocationID = &locationID.String
	}
	if maxParticipants.Valid {
		n := int(maxParticipants.Int64)
		s.MaxParticipants = &n
	}
	if price.Valid {
		s.Price = &price.Float64
	}
}

func scanSeminar(row rowScanner, s *domain.Seminar) error {
	var url, imageName, locationID sql.NullString
	var maxParticipants sql.NullInt64
	var price sql.NullFloat64
	if err := row.Scan(seminarDest(s, &url, &imageName, &locationID, &maxParticipants, &price)...); err != nil {
		return err
	}
	applySeminarNulls(s, url, imageName, locationID, maxParticipants, price)
	return nil
}

func scanSummary(row rowScanner) (*domain.SeminarSummary, error) {
	summary := &domain.SeminarSummary{}
	var url, imageName, locationID sql.NullString
	var maxParticipants sql.NullInt64
	var price sql.NullFloat64
	var (
		locID, locName, locStreet, locHouseNumber, locZip, locCity, locRemarks, locMapsURL sql.NullString
		locCreatedAt, locUpdatedAt                                                         sql.NullTime
	)
	dest := seminarDest(&summary.Seminar, &url, &imageName, &locationID, &maxParticipants, &price)
	dest = append(dest, &summary.ParticipantsCount,
		&locID, &locName, &locStreet, &locHouseNumber, &locZip, &locCity, &locRemarks, &locMapsURL,
		&locCreatedAt, &locUpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	applySeminarNulls(&summary.Seminar, url, imageName, locationID, maxParticipants, price)
	if locID.Valid {
		loc := &domain.Location{
			ID:          locID.String,
			Name:        locName.String,
			Street:      locStreet.String,
			HouseNumber: locHouseNumber.String,
			ZipCode:     locZip.String,
			City:        locCity.String,
			CreatedAt:   locCreatedAt.Time,
			UpdatedAt:   locUpdatedAt.Time,
		}
		if locRemarks.Valid {
			loc.Remarks = &locRemarks.String
		}
		if locMapsURL.Valid {
			loc.MapsURL = &locMapsURL.String
		}
		summary.Location = loc
	}
	return summary, nil
}
