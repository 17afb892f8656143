package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"seminarmanager/internal/domain"
)

var errDB = errors.New("db down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) domain.Clock {
	return domain.ClockFunc(func() time.Time { return t })
}

type mockLocationRepository struct {
	locations map[string]*domain.Location
	err       error
	nextID    int
}

func newMockLocationRepository(locs ...*domain.Location) *mockLocationRepository {
	m := &mockLocationRepository{locations: map[string]*domain.Location{}}
	for _, l := range locs {
		m.locations[l.ID] = l
	}
	return m
}

func (m *mockLocationRepository) Create(ctx context.Context, loc *domain.Location) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	loc.ID = fmt.Sprintf("loc-new-%d", m.nextID)
	cp := *loc
	m.locations[loc.ID] = &cp
	return nil
}

func (m *mockLocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	loc, ok := m.locations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *loc
	return &cp, nil
}

func (m *mockLocationRepository) List(ctx context.Context, limit int) ([]*domain.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Location, 0, len(m.locations))
	for _, l := range m.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockLocationRepository) Update(ctx context.Context, loc *domain.Location) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.locations[loc.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *loc
	m.locations[loc.ID] = &cp
	return nil
}

func (m *mockLocationRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.locations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.locations, id)
	return nil
}

// mockSeminarRepository derives participant counts from an optional participant repository.
type mockSeminarRepository struct {
	seminars     map[string]*domain.Seminar
	participants *mockParticipantRepository
	lastPage     domain.PaginationParams
	err          error
}

func newMockSeminarRepository(participants *mockParticipantRepository, seminars ...*domain.Seminar) *mockSeminarRepository {
	m := &mockSeminarRepository{seminars: map[string]*domain.Seminar{}, participants: participants}
	for _, s := range seminars {
		m.seminars[s.ID] = s
	}
	return m
}

func (m *mockSeminarRepository) Create(ctx context.Context, s *domain.Seminar) error {
	if m.err != nil {
		return m.err
	}
	if s.ID == "" {
		s.ID = "sem-new"
	}
	cp := *s
	m.seminars[s.ID] = &cp
	return nil
}

func (m *mockSeminarRepository) GetByID(ctx context.Context, id string) (*domain.Seminar, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.seminars[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSeminarRepository) Update(ctx context.Context, s *domain.Seminar) error {
	if _, ok := m.seminars[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	m.seminars[s.ID] = &cp
	return nil
}

func (m *mockSeminarRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.seminars[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.seminars, id)
	return nil
}

func (m *mockSeminarRepository) Count(ctx context.Context) (int, error) {
	return len(m.seminars), m.err
}

func (m *mockSeminarRepository) ListSummaries(ctx context.Context, page domain.PaginationParams) ([]*domain.SeminarSummary, error) {
	m.lastPage = page
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.SeminarSummary, 0, len(m.seminars))
	for id := range m.seminars {
		sum, _ := m.GetSummary(ctx, id)
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.After(out[j].StartsAt) })
	return out, nil
}

func (m *mockSeminarRepository) GetSummary(ctx context.Context, id string) (*domain.SeminarSummary, error) {
	s, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sum := &domain.SeminarSummary{Seminar: *s}
	if m.participants != nil {
		sum.ParticipantsCount = len(m.participants.bySeminar(id))
	}
	return sum, nil
}

type mockParticipantRepository struct {
	byToken   map[string]*domain.Participant
	order     []string
	createErr error
	lookupErr error
	listErr   error
	created   int
}

func newMockParticipantRepository() *mockParticipantRepository {
	return &mockParticipantRepository{byToken: map[string]*domain.Participant{}}
}

func (m *mockParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byToken[p.Token]; ok {
		return domain.ErrConflict
	}
	m.created++
	p.ID = "p-" + p.Token[:8]
	cp := *p
	m.byToken[p.Token] = &cp
	m.order = append(m.order, p.Token)
	return nil
}

func (m *mockParticipantRepository) GetByToken(ctx context.Context, token string) (*domain.Participant, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	p, ok := m.byToken[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockParticipantRepository) bySeminar(seminarID string) []*domain.Participant {
	out := make([]*domain.Participant, 0)
	for _, tok := range m.order {
		if p, ok := m.byToken[tok]; ok && p.SeminarID == seminarID {
			out = append(out, p)
		}
	}
	return out
}

func (m *mockParticipantRepository) ListBySeminarID(ctx context.Context, seminarID string) ([]*domain.Participant, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.bySeminar(seminarID), nil
}

func (m *mockParticipantRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, ok := m.byToken[token]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byToken, token)
	return nil
}

type mockEmailService struct {
	confirmations []*domain.RegistrationConfirmationEmailData
	digests       []*domain.RegistrationDigestEmailData
	contacts      []*domain.ContactFormEmailData
	confirmErr    error
	digestErr     error
	contactErr    error
}

func (m *mockEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	m.confirmations = append(m.confirmations, data)
	return m.confirmErr
}

func (m *mockEmailService) SendRegistrationDigest(ctx context.Context, data *domain.RegistrationDigestEmailData) error {
	m.digests = append(m.digests, data)
	return m.digestErr
}

func (m *mockEmailService) SendContactForm(ctx context.Context, data *domain.ContactFormEmailData) error {
	m.contacts = append(m.contacts, data)
	return m.contactErr
}

type mockMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *mockMailer) Send(ctx context.Context, to, subject, html, text string) error {
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return m.err
}

type mockRenderer struct {
	name string
	err  error
}

func (m *mockRenderer) Render(name string, data any) (string, string, string, error) {
	m.name = name
	if m.err != nil {
		return "", "", "", m.err
	}
	return "subject " + name, "<p>" + name + "</p>", name, nil
}

type mockSheetRenderer struct {
	seminar      *domain.SeminarSummary
	participants []*domain.Participant
}

func (m *mockSheetRenderer) Render(w io.Writer, seminar *domain.SeminarSummary, participants []*domain.Participant) error {
	m.seminar = seminar
	m.participants = participants
	_, err := io.WriteString(w, "%PDF-")
	return err
}

// plainHasher treats the hash as "hashed:" + password.
type plainHasher struct{ calls int }

func (h *plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (h *plainHasher) Compare(hash, password string) error {
	h.calls++
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type mockCodec struct {
	issuedSubject string
	issuedTTL     time.Duration
	verifySubject string
	verifyErr     error
	issueErr      error
}

func (m *mockCodec) Issue(subject string, ttl time.Duration) (string, error) {
	m.issuedSubject, m.issuedTTL = subject, ttl
	if m.issueErr != nil {
		return "", m.issueErr
	}
	return "token-for-" + subject, nil
}

func (m *mockCodec) Verify(token string) (string, error) {
	return m.verifySubject, m.verifyErr
}
