package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"seminarmanager/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
}

type jwtCodec struct {
	secret       []byte
	method       jwt.SigningMethod
	adminSubject string
	clock        domain.Clock
}

// SigningMethod resolves a configured HMAC algorithm name (HS256, HS384, HS512).
func SigningMethod(algorithm string) (jwt.SigningMethod, error) {
	switch algorithm {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
}

// NewJWTCodec returns a TokenCodec that signs JWTs with the given HMAC secret and
// algorithm. Verify only accepts tokens whose subject is adminSubject.
func NewJWTCodec(secret, algorithm, adminSubject string, clock domain.Clock) (domain.TokenCodec, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	method, err := SigningMethod(algorithm)
	if err != nil {
		return nil, err
	}
	if clock == nil {
		clock = domain.SystemClock()
	}
	return &jwtCodec{
		secret:       []byte(secret),
		method:       method,
		adminSubject: adminSubject,
		clock:        clock,
	}, nil
}

func (c *jwtCodec) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject is required")
	}
	now := c.clock.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(c.method, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (c *jwtCodec) Verify(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.clock.Now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}
	if claims.Subject != c.adminSubject {
		return "", domain.ErrSubjectMismatch
	}
	return claims.Subject, nil
}
