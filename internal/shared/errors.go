package shared

import "errors"

var (
	// ErrValidation indicates a malformed or policy-violating payload.
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates a uniqueness violation (duplicate username/email).
	ErrConflict = errors.New("conflict")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a forged, expired or otherwise unusable token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnauthenticated indicates no credential was supplied at all.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates an authenticated caller without entitlement.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
)
