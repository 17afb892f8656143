package domain

import (
	"context"
	"time"
)

// Location is a venue that seminars can reference.
// swagger:model Location
type Location struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Street      string    `json:"street"`
	HouseNumber string    `json:"house_number"`
	ZipCode     string    `json:"zip_code"`
	City        string    `json:"city"`
	Remarks     *string   `json:"remarks"`
	MapsURL     *string   `json:"maps_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationInput carries the admin-editable fields of a Location.
type LocationInput struct {
	Name        string
	Street      string
	HouseNumber string
	ZipCode     string
	City        string
	Remarks     *string
	MapsURL     *string
}

// LocationRepository defines storage for locations. Deleting a location clears
// the location reference of every seminar pointing at it.
type LocationRepository interface {
	Create(ctx context.Context, loc *Location) error
	GetByID(ctx context.Context, id string) (*Location, error)
	List(ctx context.Context, limit int) ([]*Location, error)
	Update(ctx context.Context, loc *Location) error
	Delete(ctx context.Context, id string) error
}

// LocationService defines admin and public operations on locations.
type LocationService interface {
	Create(ctx context.Context, in LocationInput) (*Location, error)
	Get(ctx context.Context, id string) (*Location, error)
	List(ctx context.Context, limit int) ([]*Location, error)
	Update(ctx context.Context, id string, in LocationInput) (*Location, error)
	Delete(ctx context.Context, id string) error
}
