package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"seminarmanager/internal/domain"
)

const locationColumns = `id, name, street, house_number, zip_code, city, remarks, maps_url, created_at, updated_at`

type locationRepository struct {
	DB *sql.DB
}

func NewLocationRepository(db *sql.DB) domain.LocationRepository {
	return &locationRepository{
		DB: db,
	}
}

func (r *locationRepository) Create(ctx context.Context, loc *domain.Location) error {
	if loc.ID == "" {
		loc.ID = uuid.NewString()
	}
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		loc.ID, loc.Name, loc.Street, loc.HouseNumber, loc.ZipCode, loc.City,
		nullable(loc.Remarks), nullable(loc.MapsURL), loc.CreatedAt.UTC(), loc.UpdatedAt.UTC(),
	)
	return mapError(err)
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`
	loc, err := scanLocation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return loc, nil
}

func (r *locationRepository) List(ctx context.Context, limit int) ([]*domain.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		ORDER BY name ASC, id ASC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	locations := make([]*domain.Location, 0)
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (r *locationRepository) Update(ctx context.Context, loc *domain.Location) error {
	query := `
		UPDATE locations
		SET name = $1, street = $2, house_number = $3, zip_code = $4, city = $5,
			remarks = $6, maps_url = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := r.DB.ExecContext(ctx, query,
		loc.Name, loc.Street, loc.HouseNumber, loc.ZipCode, loc.City,
		nullable(loc.Remarks), nullable(loc.MapsURL), loc.UpdatedAt.UTC(), loc.ID,
	)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(result)
}

// Delete removes the location. Seminars referencing it keep existing with
// location_id set to NULL by the foreign key rule.
func (r *locationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLocation(row rowScanner) (*domain.Location, error) {
	loc := &domain.Location{}
	var remarks, mapsURL sql.NullString
	err := row.Scan(
		&loc.ID, &loc.Name, &loc.Street, &loc.HouseNumber, &loc.ZipCode, &loc.City,
		&remarks, &mapsURL, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if remarks.Valid {
		loc.Remarks = &remarks.String
	}
	if mapsURL.Valid {
		loc.MapsURL = &mapsURL.String
	}
	return loc, nil
}
