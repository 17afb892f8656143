package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"seminarmanager/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seminarRowColumns = []string{
	"id", "title", "description", "starts_at", "url", "max_participants", "price", "image_name", "location_id", "created_at", "updated_at",
}

var summaryRowColumns = append(append([]string{}, seminarRowColumns...),
	"participants_count",
	"l_id", "l_name", "l_street", "l_house_number", "l_zip_code", "l_city", "l_remarks", "l_maps_url", "l_created_at", "l_updated_at",
)

func TestSeminarRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	starts := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	max := 20

	tests := []struct {
		name    string
		seminar *domain.Seminar
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			seminar: &domain.Seminar{
				ID: "sem-1", Title: "Yoga", Description: "Basics", StartsAt: starts,
				MaxParticipants: &max, CreatedAt: created, UpdatedAt: created,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO seminars \(id, title, description, starts_at`).
					WithArgs("sem-1", "Yoga", "Basics", starts, nil, 20, nil, nil, nil, created, created).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:    "db error",
			seminar: &domain.Seminar{ID: "sem-2", Title: "Yoga", StartsAt: starts},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO seminars`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewSeminarRepository(db).Create(ctx, tt.seminar)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSeminarRepository_Create_generates_id(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO seminars`).WillReturnResult(sqlmock.NewResult(0, 1))
	s := &domain.Seminar{Title: "Yoga", StartsAt: time.Now()}
	require.NoError(t, NewSeminarRepository(db).Create(context.Background(), s))
	assert.Len(t, s.ID, 36)
}

func TestSeminarRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success with optional fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT s.id, s.title, s.description, s.starts_at.* FROM seminars s WHERE s.id = \$1`).
			WithArgs("sem-1").
			WillReturnRows(sqlmock.NewRows(seminarRowColumns).
				AddRow("sem-1", "Yoga", "Basics", ts, "https://example.org", int64(12), 9.5, "yoga.png", "loc-1", ts, ts))

		got, err := NewSeminarRepository(db).GetByID(ctx, "sem-1")
		require.NoError(t, err)
		assert.Equal(t, "Yoga", got.Title)
		require.NotNil(t, got.MaxParticipants)
		assert.Equal(t, 12, *got.MaxParticipants)
		require.NotNil(t, got.Price)
		assert.Equal(t, 9.5, *got.Price)
		require.NotNil(t, got.LocationID)
		assert.Equal(t, "loc-1", *got.LocationID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM seminars s WHERE s.id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := NewSeminarRepository(db).GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, got)
	})
}

func TestSeminarRepository_ListSummaries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .*\(SELECT COUNT\(\*\) FROM participants p WHERE p.seminar_id = s.id\) AS participants_count.*LEFT JOIN locations l ON l.id = s.location_id.*ORDER BY s.starts_at DESC, s.id ASC\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(summaryRowColumns).
			AddRow("sem-a", "A", "", ts, nil, nil, nil, nil, "loc-1", ts, ts,
				int64(3), "loc-1", "Hall", "Main St", "1", "10115", "Berlin", nil, nil, ts, ts).
			AddRow("sem-b", "B", "", ts, nil, nil, nil, nil, nil, ts, ts,
				int64(0), nil, nil, nil, nil, nil, nil, nil, nil, nil, nil))

	got, err := NewSeminarRepository(db).ListSummaries(context.Background(), domain.PaginationParams{Limit: 10, Offset: 20})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 3, got[0].ParticipantsCount)
	require.NotNil(t, got[0].Location)
	assert.Equal(t, "Hall", got[0].Location.Name)
	assert.Nil(t, got[0].Location.Remarks)

	assert.Equal(t, 0, got[1].ParticipantsCount)
	assert.Nil(t, got[1].Location)
	assert.Nil(t, got[1].LocationID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeminarRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "success", affected: 1},
		{name: "not found", affected: 0, wantErr: domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`DELETE FROM seminars WHERE id = \$1`).
				WithArgs("sem-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err = NewSeminarRepository(db).Delete(context.Background(), "sem-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSeminarRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM seminars`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err := NewSeminarRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
