package imagecheck

import "errors"

var (
	// ErrEmptyImage is returned when the uploaded blob carries no data at all.
	ErrEmptyImage = errors.New("image data is empty")

	// ErrCorruptImage wraps decoder failures: malformed headers, truncated streams, unsupported encodings.
	ErrCorruptImage = errors.New("image does not decode")
)
