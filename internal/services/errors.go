package services

import "errors"

// Sentinel errors shared by all services. The API layer translates these to
// HTTP status codes in one place; services never reference status codes.
var (
	// ErrValidation marks missing or malformed input. Wrap it with the
	// field-specific message: fmt.Errorf("%w: destination is required", ErrValidation).
	ErrValidation = errors.New("validation error")

	// ErrEmailTaken is returned when signup hits the unique email constraint.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers absent, malformed, expired and badly signed tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound is returned for resources that do not exist or belong to
	// another user; the two cases share one code path.
	ErrNotFound = errors.New("not found")

	// ErrUpstream marks a third-party dependency failure.
	ErrUpstream = errors.New("upstream error")
)
