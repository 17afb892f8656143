package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"seminarmanager/internal/domain"
	"seminarmanager/internal/metrics"
)

type adminAuthenticator struct {
	username     string
	passwordHash string
	hasher       domain.PasswordHasher
}

// NewAdminAuthenticator checks credentials against the single configured admin.
func NewAdminAuthenticator(username, passwordHash string, hasher domain.PasswordHasher) domain.Authenticator {
	return &adminAuthenticator{
		username:     username,
		passwordHash: passwordHash,
		hasher:       hasher,
	}
}

// Authenticate always runs the password hash comparison so a wrong username
// costs the same as a wrong password.
func (a *adminAuthenticator) Authenticate(username, password string) *domain.AdminIdentity {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passwordErr := a.hasher.Compare(a.passwordHash, password)
	if !usernameOK || passwordErr != nil {
		return nil
	}
	return &domain.AdminIdentity{Username: a.username}
}

type authService struct {
	authenticator domain.Authenticator
	codec         domain.TokenCodec
	sessionTTL    time.Duration
	clock         domain.Clock
	logger        *slog.Logger
}

// NewAuthService creates the admin login flow on top of an Authenticator and a TokenCodec.
func NewAuthService(authenticator domain.Authenticator, codec domain.TokenCodec, sessionTTL time.Duration, clock domain.Clock, logger *slog.Logger) domain.AuthService {
	return &authService{
		authenticator: authenticator,
		codec:         codec,
		sessionTTL:    sessionTTL,
		clock:         clock,
		logger:        logger,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.AdminSession, error) {
	identity := s.authenticator.Authenticate(username, password)
	if identity == nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		s.logger.WarnContext(ctx, "admin login failed")
		return nil, domain.ErrUnauthorized
	}
	issuedAt := s.clock.Now()
	token, err := s.codec.Issue(identity.Username, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.InfoContext(ctx, "admin logged in", "username", identity.Username)
	return &domain.AdminSession{
		Token:     token,
		ExpiresAt: issuedAt.Add(s.sessionTTL),
	}, nil
}

// CheckSession verifies a session token. Every failure is reported as
// domain.ErrUnauthorized; the codec error is wrapped for logging only.
func (s *authService) CheckSession(token string) (*domain.AdminIdentity, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	subject, err := s.codec.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return &domain.AdminIdentity{Username: subject}, nil
}
