package validator

import (
	"context"
	"strings"
)

// RequiredString validates that a string field is present and not blank after
// trimming whitespace.
func RequiredString(field string) Rule {
	return func(_ context.Context, rec Record) (*ValidationError, error) {
		v, ferr := rec.String(field)
		if ferr != nil {
			return ferr, nil
		}
		if strings.TrimSpace(v) == "" {
			return &ValidationError{
				Field:   field,
				Code:    CodeEmptyField,
				Message: "field cannot be empty",
				TranslationValues: map[string]any{
					"field": field,
				},
			}, nil
		}
		return nil, nil
	}
}

// RequiredSuffix validates that a string field ends with one of the given
// suffixes. Matching is case-sensitive.
func RequiredSuffix(field, code, message string, suffixes ...string) Rule {
	return func(_ context.Context, rec Record) (*ValidationError, error) {
		v, ferr := rec.String(field)
		if ferr != nil {
			return ferr, nil
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(v, suffix) {
				return nil, nil
			}
		}
		return &ValidationError{
			Field:   field,
			Code:    code,
			Message: message,
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": strings.Join(suffixes, ", "),
			},
		}, nil
	}
}
