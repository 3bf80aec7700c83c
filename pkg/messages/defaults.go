package messages

import "github.com/collabkit/recordcheck/pkg/validator"

// defaultMessages covers every code of the validation taxonomy in English.
func defaultMessages() map[string]string {
	return map[string]string{
		validator.CodeMissingField:       "{field} is missing from the record",
		validator.CodeEmptyField:         "{field} cannot be empty",
		validator.CodeInvalidType:        "{field} must be an integer value",
		validator.CodeNotFound:           "the referenced {entity} does not exist",
		validator.CodeDateOrder:          "{field} cannot precede {start}",
		validator.CodeInvariantViolation: "{field} conflicts with {other}",
		validator.CodeInvalidFile:        "the image must be a .jpg, .jpeg, or .png file of no more than {max} bytes",
		validator.CodeCorruptedFile:      "the image is not valid",
	}
}
