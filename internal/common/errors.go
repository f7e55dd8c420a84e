// Package common defines shared constants and sentinel errors used across
// the AuthGate server layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository/store-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrorConflict  = errors.New("already exists")
	ErrorStoreIO   = errors.New("store io error")
	ErrorCorrupted = errors.New("corrupted record")

	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Login failures are reported with a single error regardless of
	// which factor failed.
	ErrorInvalidCredentials = errors.New("username or password invalid")

	// Access-token validation errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrWrongIssuer  = errors.New("wrong token issuer")

	// Refresh-token errors.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// Invite errors.
	ErrInvalidInvite     = errors.New("invalid invite")
	ErrInviteAlreadyUsed = errors.New("invite already used")
	ErrExhaustedRetries  = errors.New("exhausted retries")

	// Login throttling.
	ErrTooManyAttempts = errors.New("too many attempts")

	ErrInvalidOldPassword = errors.New("invalid old password")
)
