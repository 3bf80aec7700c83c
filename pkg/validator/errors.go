package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownKind is returned when a registry is asked to validate a record kind it has no rule set for.
	ErrUnknownKind = errors.New("unknown record kind")
)
