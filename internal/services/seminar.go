package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seminarmanager/internal/domain"
	"seminarmanager/internal/sanitize"
)

type seminarService struct {
	seminarRepo    domain.SeminarRepository
	locationRepo   domain.LocationRepository
	clock          domain.Clock
	contextTimeout time.Duration
}

// NewSeminarService serves the seminar listings (with live participant counts) and the admin CRUD.
func NewSeminarService(seminarRepo domain.SeminarRepository, locationRepo domain.LocationRepository, clock domain.Clock, timeout time.Duration) domain.SeminarService {
	return &seminarService{
		seminarRepo:    seminarRepo,
		locationRepo:   locationRepo,
		clock:          clock,
		contextTimeout: orDefaultTimeout(timeout),
	}
}

func (s *seminarService) List(ctx context.Context, page domain.PaginationParams) ([]*domain.SeminarSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.seminarRepo.ListSummaries(ctx, normalizePage(page))
}

func (s *seminarService) Get(ctx context.Context, id string) (*domain.SeminarSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.seminarRepo.GetSummary(ctx, id)
}

func (s *seminarService) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.seminarRepo.Count(ctx)
}

func (s *seminarService) Create(ctx context.Context, in domain.SeminarInput) (*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	seminar := &domain.Seminar{CreatedAt: now}
	applySeminarInput(seminar, in, now)
	if err := s.seminarRepo.Create(ctx, seminar); err != nil {
		return nil, err
	}
	return seminar, nil
}

func (s *seminarService) Update(ctx context.Context, id string, in domain.SeminarInput) (*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	seminar, err := s.seminarRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}
	applySeminarInput(seminar, in, s.clock.Now())
	if err := s.seminarRepo.Update(ctx, seminar); err != nil {
		return nil, err
	}
	return seminar, nil
}

// Delete removes the seminar together with all of its participants.
func (s *seminarService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.seminarRepo.Delete(ctx, id)
}

func (s *seminarService) validate(ctx context.Context, in domain.SeminarInput) error {
	if in.StartsAt.IsZero() {
		return fmt.Errorf("%w: seminar start is required", domain.ErrValidation)
	}
	if in.MaxParticipants != nil && *in.MaxParticipants < 0 {
		return fmt.Errorf("%w: max participants must not be negative", domain.ErrValidation)
	}
	if in.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *in.LocationID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: location %s does not exist", domain.ErrValidation, *in.LocationID)
			}
			return err
		}
	}
	return nil
}

func applySeminarInput(seminar *domain.Seminar, in domain.SeminarInput, now time.Time) {
	seminar.Title = sanitize.Text(in.Title)
	seminar.Description = sanitize.HTML(in.Description)
	seminar.StartsAt = in.StartsAt
	seminar.URL = in.URL
	seminar.MaxParticipants = in.MaxParticipants
	seminar.Price = in.Price
	seminar.ImageName = sanitize.OptionalText(in.ImageName)
	seminar.LocationID = in.LocationID
	seminar.UpdatedAt = now
}
