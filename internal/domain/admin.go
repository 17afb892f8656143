package domain

import (
	"context"
	"time"
)

// AdminIdentity identifies the single configured administrator.
type AdminIdentity struct {
	Username string `json:"username"`
}

// PasswordHasher creates and verifies slow salted password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenCodec issues and verifies signed, expiring admin session tokens.
type TokenCodec interface {
	Issue(subject string, ttl time.Duration) (string, error)
	// Verify returns the token subject. It fails with ErrInvalidToken for bad
	// signatures, malformed or expired tokens and ErrSubjectMismatch when the
	// subject is not the configured admin.
	Verify(token string) (subject string, err error)
}

// Authenticator validates admin credentials. It returns nil on any mismatch.
type Authenticator interface {
	Authenticate(username, password string) *AdminIdentity
}

// AdminSession is an issued session token together with its expiry.
type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService handles the admin login flow.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*AdminSession, error)
	CheckSession(token string) (*AdminIdentity, error)
}
