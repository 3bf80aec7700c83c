package messages

import "errors"

var (
	// ErrEmptyLocale is returned when an option supplies an empty locale code.
	ErrEmptyLocale = errors.New("empty locale code")

	// ErrFailedToParseYAML wraps malformed catalog documents.
	ErrFailedToParseYAML = errors.New("failed to parse message catalog YAML")
)
