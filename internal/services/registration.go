package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"seminarmanager/internal/domain"
	"seminarmanager/internal/metrics"
	"seminarmanager/internal/sanitize"
)

// unregisterTokenBytes is the entropy of an unregister token (160 bits, 40 hex characters).
const unregisterTokenBytes = 20

// startsAtLayout formats seminar start times in mails.
const startsAtLayout = "02.01.2006 um 15:04"

// RegistrationSettings configures the links and times written into notification mails.
type RegistrationSettings struct {
	// PublicBaseURL prefixes unregister links, e.g. https://seminare.example.org.
	PublicBaseURL string
	// Location is the time zone seminar times are shown in.
	Location *time.Location
	Timeout  time.Duration
}

type registrationService struct {
	seminarRepo     domain.SeminarRepository
	participantRepo domain.ParticipantRepository
	emailService    domain.EmailService
	sheetRenderer   domain.ParticipantSheetRenderer
	clock           domain.Clock
	settings        RegistrationSettings
	logger          *slog.Logger
}

func NewRegistrationService(
	seminarRepo domain.SeminarRepository,
	participantRepo domain.ParticipantRepository,
	emailService domain.EmailService,
	sheetRenderer domain.ParticipantSheetRenderer,
	clock domain.Clock,
	settings RegistrationSettings,
	logger *slog.Logger,
) domain.RegistrationService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	settings.Timeout = orDefaultTimeout(settings.Timeout)
	return &registrationService{
		seminarRepo:     seminarRepo,
		participantRepo: participantRepo,
		emailService:    emailService,
		sheetRenderer:   sheetRenderer,
		clock:           clock,
		settings:        settings,
		logger:          logger,
	}
}

// Register stores the participant and then sends the confirmation and the admin
// digest. A failed notification does not undo the registration: the result is
// returned together with an error wrapping domain.ErrNotificationFailure.
// The open check and the insert are not atomic and max participants is not enforced.
func (s *registrationService) Register(ctx context.Context, seminarID string, info domain.ParticipantInfo) (*domain.RegistrationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.settings.Timeout)
	defer cancel()

	firstName, lastName := sanitize.Text(info.FirstName), sanitize.Text(info.LastName)
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", domain.ErrValidation)
	}

	seminar, err := s.seminarRepo.GetSummary(ctx, seminarID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.RegistrationRejectionsTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}
	now := s.clock.Now()
	if !seminar.RegistrationOpen(now) {
		metrics.RegistrationRejectionsTotal.WithLabelValues("closed").Inc()
		return nil, domain.ErrRegistrationClosed
	}

	token, err := generateUnregisterToken()
	if err != nil {
		return nil, err
	}
	participant := &domain.Participant{
		SeminarID: seminar.ID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.TrimSpace(info.Email),
		Remarks:   sanitize.OptionalText(info.Remarks),
		Token:     token,
		CreatedAt: now,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to store participant: %w", err)
	}
	metrics.RegistrationsTotal.Inc()
	s.logger.InfoContext(ctx, "participant registered", "seminar_id", seminar.ID, "participant_id", participant.ID)

	result := &domain.RegistrationResult{
		ParticipantID:   participant.ID,
		SeminarID:       seminar.ID,
		UnregisterToken: token,
	}
	if err := s.notify(ctx, seminar, participant); err != nil {
		return result, fmt.Errorf("%w: %w", domain.ErrNotificationFailure, err)
	}
	return result, nil
}

// notify attempts both mails even when the first one fails.
func (s *registrationService) notify(ctx context.Context, seminar *domain.SeminarSummary, participant *domain.Participant) error {
	startsAt := seminar.StartsAt.In(s.settings.Location).Format(startsAtLayout)

	confirmErr := s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationConfirmationEmailData{
		Participant:   participant,
		Seminar:       seminar,
		StartsAt:      startsAt,
		UnregisterURL: s.unregisterURL(seminar.ID, participant.Token),
	})
	s.recordNotification(ctx, "confirmation", seminar.ID, confirmErr)

	digestErr := s.sendDigest(ctx, seminar, participant, startsAt)
	s.recordNotification(ctx, "digest", seminar.ID, digestErr)

	return errors.Join(confirmErr, digestErr)
}

func (s *registrationService) sendDigest(ctx context.Context, seminar *domain.SeminarSummary, participant *domain.Participant, startsAt string) error {
	participants, err := s.participantRepo.ListBySeminarID(ctx, seminar.ID)
	if err != nil {
		return fmt.Errorf("failed to list participants: %w", err)
	}
	seminar.ParticipantsCount = len(participants)
	return s.emailService.SendRegistrationDigest(ctx, &domain.RegistrationDigestEmailData{
		NewParticipant: participant,
		Seminar:        seminar,
		StartsAt:       startsAt,
		Participants:   participants,
	})
}

func (s *registrationService) recordNotification(ctx context.Context, kind, seminarID string, err error) {
	if err == nil {
		return
	}
	metrics.NotificationFailuresTotal.WithLabelValues(kind).Inc()
	s.logger.ErrorContext(ctx, "notification failed", "kind", kind, "seminar_id", seminarID, "err", err)
}

func (s *registrationService) unregisterURL(seminarID, token string) string {
	base := strings.TrimRight(s.settings.PublicBaseURL, "/")
	return fmt.Sprintf("%s/seminars/%s/unregister?token=%s", base, url.PathEscape(seminarID), url.QueryEscape(token))
}

// Unregister deletes the participant holding token. The token is consumed, so
// a second call with the same token fails with domain.ErrNotFound.
func (s *registrationService) Unregister(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, s.settings.Timeout)
	defer cancel()

	if token == "" {
		return domain.ErrNotFound
	}
	participant, err := s.participantRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if err := s.participantRepo.DeleteByToken(ctx, token); err != nil {
		return err
	}
	metrics.UnregistrationsTotal.Inc()
	s.logger.InfoContext(ctx, "participant unregistered", "seminar_id", participant.SeminarID, "participant_id", participant.ID)
	return nil
}

func (s *registrationService) ListParticipants(ctx context.Context, seminarID string) ([]*domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.settings.Timeout)
	defer cancel()

	if _, err := s.seminarRepo.GetByID(ctx, seminarID); err != nil {
		return nil, err
	}
	return s.participantRepo.ListBySeminarID(ctx, seminarID)
}

func (s *registrationService) WriteParticipantSheet(ctx context.Context, seminarID string, w io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, s.settings.Timeout)
	defer cancel()

	seminar, err := s.seminarRepo.GetSummary(ctx, seminarID)
	if err != nil {
		return err
	}
	participants, err := s.participantRepo.ListBySeminarID(ctx, seminarID)
	if err != nil {
		return err
	}
	return s.sheetRenderer.Render(w, seminar, participants)
}

func generateUnregisterToken() (string, error) {
	b := make([]byte, unregisterTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate unregister token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
