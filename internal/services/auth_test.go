package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"seminarmanager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuthenticator_Authenticate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{name: "valid credentials", username: "admin", password: "s3cret", wantOK: true},
		{name: "wrong password", username: "admin", password: "nope"},
		{name: "wrong username", username: "root", password: "s3cret"},
		{name: "username differs in case", username: "Admin", password: "s3cret"},
		{name: "username prefix", username: "adm", password: "s3cret"},
		{name: "empty", username: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := &plainHasher{}
			a := NewAdminAuthenticator("admin", "hashed:s3cret", hasher)

			got := a.Authenticate(tt.username, tt.password)
			if tt.wantOK {
				require.NotNil(t, got)
				assert.Equal(t, "admin", got.Username)
			} else {
				assert.Nil(t, got)
			}
			// The hash is compared even when the username is wrong.
			assert.Equal(t, 1, hasher.calls)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	authenticator := NewAdminAuthenticator("admin", "hashed:s3cret", &plainHasher{})

	t.Run("success", func(t *testing.T) {
		codec := &mockCodec{}
		svc := NewAuthService(authenticator, codec, 3*time.Hour, fixedClock(now), discardLogger())

		session, err := svc.Login(context.Background(), "admin", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "token-for-admin", session.Token)
		assert.True(t, session.ExpiresAt.Equal(now.Add(3*time.Hour)))
		assert.Equal(t, "admin", codec.issuedSubject)
		assert.Equal(t, 3*time.Hour, codec.issuedTTL)
	})

	t.Run("bad credentials", func(t *testing.T) {
		codec := &mockCodec{}
		svc := NewAuthService(authenticator, codec, 3*time.Hour, fixedClock(now), discardLogger())

		session, err := svc.Login(context.Background(), "admin", "wrong")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Nil(t, session)
		assert.Empty(t, codec.issuedSubject)
	})

	t.Run("codec error", func(t *testing.T) {
		codec := &mockCodec{issueErr: errors.New("boom")}
		svc := NewAuthService(authenticator, codec, 3*time.Hour, fixedClock(now), discardLogger())

		_, err := svc.Login(context.Background(), "admin", "s3cret")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestAuthService_CheckSession(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		codec     *mockCodec
		wantUser  string
		wantCause error
	}{
		{name: "valid", token: "t", codec: &mockCodec{verifySubject: "admin"}, wantUser: "admin"},
		{name: "missing token", token: "", codec: &mockCodec{verifySubject: "admin"}},
		{name: "expired or forged", token: "t", codec: &mockCodec{verifyErr: domain.ErrInvalidToken}, wantCause: domain.ErrInvalidToken},
		{name: "other subject", token: "t", codec: &mockCodec{verifyErr: domain.ErrSubjectMismatch}, wantCause: domain.ErrSubjectMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(nil, tt.codec, time.Hour, domain.SystemClock(), discardLogger())

			identity, err := svc.CheckSession(tt.token)
			if tt.wantUser != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, identity.Username)
				return
			}
			require.ErrorIs(t, err, domain.ErrUnauthorized)
			assert.Nil(t, identity)
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}
		})
	}
}
