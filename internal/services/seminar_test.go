package services

import (
	"context"
	"testing"
	"time"

	"seminarmanager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogNow = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

func newSeminarFixture(t *testing.T) (domain.SeminarService, *mockSeminarRepository, *mockParticipantRepository) {
	t.Helper()
	participants := newMockParticipantRepository()
	seminars := newMockSeminarRepository(participants,
		&domain.Seminar{ID: "sem-a", Title: "A", StartsAt: catalogNow.AddDate(0, 0, 5)},
		&domain.Seminar{ID: "sem-b", Title: "B", StartsAt: catalogNow.AddDate(0, 0, 9)},
	)
	for _, tok := range []string{"aaaaaaaa1", "aaaaaaaa2", "aaaaaaaa3"} {
		require.NoError(t, participants.Create(context.Background(), &domain.Participant{SeminarID: "sem-a", Token: tok}))
	}
	locations := newMockLocationRepository(&domain.Location{ID: "loc-1", Name: "Hall"})
	return NewSeminarService(seminars, locations, fixedClock(catalogNow), time.Second), seminars, participants
}

func TestSeminarService_List_counts(t *testing.T) {
	svc, _, _ := newSeminarFixture(t)

	got, err := svc.List(context.Background(), domain.PaginationParams{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "sem-b", got[0].ID)
	assert.Equal(t, 0, got[0].ParticipantsCount)
	assert.Equal(t, "sem-a", got[1].ID)
	assert.Equal(t, 3, got[1].ParticipantsCount)
}

func TestSeminarService_List_normalizes_page(t *testing.T) {
	tests := []struct {
		name string
		in   domain.PaginationParams
		want domain.PaginationParams
	}{
		{name: "defaults", in: domain.PaginationParams{}, want: domain.PaginationParams{Limit: 10}},
		{name: "capped", in: domain.PaginationParams{Limit: 1000, Offset: 5}, want: domain.PaginationParams{Limit: 100, Offset: 5}},
		{name: "negative offset", in: domain.PaginationParams{Limit: 3, Offset: -2}, want: domain.PaginationParams{Limit: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newSeminarFixture(t)
			_, err := svc.List(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, repo.lastPage)
		})
	}
}

func TestSeminarService_Get(t *testing.T) {
	svc, _, _ := newSeminarFixture(t)

	got, err := svc.Get(context.Background(), "sem-a")
	require.NoError(t, err)
	assert.Equal(t, 3, got.ParticipantsCount)

	_, err = svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSeminarService_Create(t *testing.T) {
	negative := -1
	unknown := "loc-missing"
	known := "loc-1"

	tests := []struct {
		name    string
		in      domain.SeminarInput
		wantErr error
	}{
		{name: "valid", in: domain.SeminarInput{Title: "<i>Yoga</i>", Description: `<p onclick="x">Hi</p>`, StartsAt: catalogNow.AddDate(0, 1, 0), LocationID: &known}},
		{name: "missing start", in: domain.SeminarInput{Title: "Yoga"}, wantErr: domain.ErrValidation},
		{name: "negative capacity", in: domain.SeminarInput{Title: "Yoga", StartsAt: catalogNow, MaxParticipants: &negative}, wantErr: domain.ErrValidation},
		{name: "unknown location", in: domain.SeminarInput{Title: "Yoga", StartsAt: catalogNow, LocationID: &unknown}, wantErr: domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newSeminarFixture(t)

			got, err := svc.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, repo.seminars, 2)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Yoga", got.Title)
			assert.Equal(t, "<p>Hi</p>", got.Description)
			assert.True(t, got.CreatedAt.Equal(catalogNow))
			assert.Contains(t, repo.seminars, got.ID)
		})
	}
}

func TestSeminarService_Update(t *testing.T) {
	svc, repo, _ := newSeminarFixture(t)
	price := 15.0

	got, err := svc.Update(context.Background(), "sem-a", domain.SeminarInput{Title: "A2", StartsAt: catalogNow.AddDate(0, 0, 6), Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Title)
	assert.Equal(t, "A2", repo.seminars["sem-a"].Title)
	require.NotNil(t, repo.seminars["sem-a"].Price)

	_, err = svc.Update(context.Background(), "missing", domain.SeminarInput{Title: "X", StartsAt: catalogNow})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSeminarService_Delete(t *testing.T) {
	svc, repo, _ := newSeminarFixture(t)

	require.NoError(t, svc.Delete(context.Background(), "sem-a"))
	assert.NotContains(t, repo.seminars, "sem-a")
	require.ErrorIs(t, svc.Delete(context.Background(), "sem-a"), domain.ErrNotFound)
}
