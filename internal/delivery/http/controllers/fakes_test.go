package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var errBoom = errors.New("boom")

// decodeResponse decodes the API envelope and re-decodes data into dest when dest is not nil.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dest any) h.APIResponse {
	t.Helper()
	var raw struct {
		Data  json.RawMessage `json:"data"`
		Error *h.APIError     `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	if dest != nil && len(raw.Data) > 0 && string(raw.Data) != "null" {
		require.NoError(t, json.Unmarshal(raw.Data, dest))
	}
	return h.APIResponse{Data: raw.Data, Error: raw.Error}
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	session      *domain.AdminSession
	loginErr     error
	validToken   string
	lastUsername string
	lastPassword string
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (*domain.AdminSession, error) {
	f.lastUsername, f.lastPassword = username, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuthService) CheckSession(token string) (*domain.AdminIdentity, error) {
	if token == "" || token != f.validToken {
		return nil, domain.ErrUnauthorized
	}
	return &domain.AdminIdentity{Username: "admin"}, nil
}

// fakeSeminarService implements domain.SeminarService for handler tests.
type fakeSeminarService struct {
	seminars   []*domain.SeminarSummary
	byID       map[string]*domain.SeminarSummary
	count      int
	err        error
	lastPage   domain.PaginationParams
	lastID     string
	lastInput  domain.SeminarInput
	lastDelete string
}

func (f *fakeSeminarService) List(_ context.Context, page domain.PaginationParams) ([]*domain.SeminarSummary, error) {
	f.lastPage = page
	return f.seminars, f.err
}

func (f *fakeSeminarService) Get(_ context.Context, id string) (*domain.SeminarSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSeminarService) Count(_ context.Context) (int, error) {
	return f.count, f.err
}

func (f *fakeSeminarService) Create(_ context.Context, in domain.SeminarInput) (*domain.Seminar, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Seminar{ID: "sem-new", Title: in.Title, StartsAt: in.StartsAt}, nil
}

func (f *fakeSeminarService) Update(_ context.Context, id string, in domain.SeminarInput) (*domain.Seminar, error) {
	f.lastID, f.lastInput = id, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Seminar{ID: id, Title: in.Title, StartsAt: in.StartsAt}, nil
}

func (f *fakeSeminarService) Delete(_ context.Context, id string) error {
	f.lastDelete = id
	return f.err
}

// fakeLocationService implements domain.LocationService for handler tests.
type fakeLocationService struct {
	locations  []*domain.Location
	err        error
	lastLimit  int
	lastID     string
	lastInput  domain.LocationInput
	lastDelete string
}

func (f *fakeLocationService) Create(_ context.Context, in domain.LocationInput) (*domain.Location, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Location{ID: "loc-new", Name: in.Name, City: in.City}, nil
}

func (f *fakeLocationService) Get(_ context.Context, id string) (*domain.Location, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLocationService) List(_ context.Context, limit int) ([]*domain.Location, error) {
	f.lastLimit = limit
	return f.locations, f.err
}

func (f *fakeLocationService) Update(_ context.Context, id string, in domain.LocationInput) (*domain.Location, error) {
	f.lastID, f.lastInput = id, in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Location{ID: id, Name: in.Name, City: in.City}, nil
}

func (f *fakeLocationService) Delete(_ context.Context, id string) error {
	f.lastDelete = id
	return f.err
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	result       *domain.RegistrationResult
	registerErr  error
	unregErr     error
	participants []*domain.Participant
	listErr      error
	sheet        []byte
	sheetErr     error
	lastSeminar  string
	lastInfo     domain.ParticipantInfo
	lastToken    string
}

func (f *fakeRegistrationService) Register(_ context.Context, seminarID string, info domain.ParticipantInfo) (*domain.RegistrationResult, error) {
	f.lastSeminar, f.lastInfo = seminarID, info
	return f.result, f.registerErr
}

func (f *fakeRegistrationService) Unregister(_ context.Context, token string) error {
	f.lastToken = token
	return f.unregErr
}

func (f *fakeRegistrationService) ListParticipants(_ context.Context, seminarID string) ([]*domain.Participant, error) {
	f.lastSeminar = seminarID
	return f.participants, f.listErr
}

func (f *fakeRegistrationService) WriteParticipantSheet(_ context.Context, seminarID string, w io.Writer) error {
	f.lastSeminar = seminarID
	if f.sheetErr != nil {
		return f.sheetErr
	}
	_, err := w.Write(f.sheet)
	return err
}

// fakeContactService implements domain.ContactService for handler tests.
type fakeContactService struct {
	err      error
	lastForm domain.ContactForm
}

func (f *fakeContactService) Submit(_ context.Context, form domain.ContactForm) error {
	f.lastForm = form
	return f.err
}

// fakePinger implements Pinger.
type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }
