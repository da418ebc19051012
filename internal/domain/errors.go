package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when request data fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyPatch is returned when a partial update supplies no fields.
	ErrEmptyPatch = errors.New("no fields provided for update")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
