package domain

import "errors"

// Sentinel errors shared by services, repositories and the HTTP layer.
var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidToken        = errors.New("invalid token")
	ErrSubjectMismatch     = errors.New("token subject mismatch")
	ErrRegistrationClosed  = errors.New("seminar registration is closed")
	ErrValidation          = errors.New("validation failed")
	ErrNotificationFailure = errors.New("notification could not be delivered")
	ErrConflict            = errors.New("conflict")
)
