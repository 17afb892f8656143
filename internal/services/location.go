package services

import (
	"context"
	"time"

	"seminarmanager/internal/domain"
	"seminarmanager/internal/sanitize"
)

type locationService struct {
	locationRepo   domain.LocationRepository
	clock          domain.Clock
	contextTimeout time.Duration
}

func NewLocationService(locationRepo domain.LocationRepository, clock domain.Clock, timeout time.Duration) domain.LocationService {
	return &locationService{
		locationRepo:   locationRepo,
		clock:          clock,
		contextTimeout: orDefaultTimeout(timeout),
	}
}

func (s *locationService) Create(ctx context.Context, in domain.LocationInput) (*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.clock.Now()
	loc := &domain.Location{CreatedAt: now}
	applyLocationInput(loc, in, now)
	if err := s.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *locationService) Get(ctx context.Context, id string) (*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.locationRepo.GetByID(ctx, id)
}

func (s *locationService) List(ctx context.Context, limit int) ([]*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.locationRepo.List(ctx, normalizeLimit(limit))
}

func (s *locationService) Update(ctx context.Context, id string, in domain.LocationInput) (*domain.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyLocationInput(loc, in, s.clock.Now())
	if err := s.locationRepo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Delete removes the location; seminars that referenced it lose their location.
func (s *locationService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.locationRepo.Delete(ctx, id)
}

func applyLocationInput(loc *domain.Location, in domain.LocationInput, now time.Time) {
	loc.Name = sanitize.Text(in.Name)
	loc.Street = sanitize.Text(in.Street)
	loc.HouseNumber = sanitize.Text(in.HouseNumber)
	loc.ZipCode = sanitize.Text(in.ZipCode)
	loc.City = sanitize.Text(in.City)
	loc.Remarks = sanitize.OptionalText(in.Remarks)
	loc.MapsURL = in.MapsURL
	loc.UpdatedAt = now
}
