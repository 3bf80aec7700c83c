package validator

import "context"

// OptionalInt validates that a field, when present and set, holds an integer
// value. The rule is skipped when the field is absent or unset.
func OptionalInt(field string) Rule {
	return func(_ context.Context, rec Record) (*ValidationError, error) {
		v, ok := rec.Lookup(field)
		if !ok || v == nil {
			return nil, nil
		}
		switch v.(type) {
		case int, int32, int64:
			return nil, nil
		}
		return &ValidationError{
			Field:   field,
			Code:    CodeInvalidType,
			Message: "must be an integer value",
			TranslationValues: map[string]any{
				"field": field,
			},
		}, nil
	}
}

// MaxInt validates that an integer field does not exceed max.
func MaxInt(field string, max int64, code, message string) Rule {
	return func(_ context.Context, rec Record) (*ValidationError, error) {
		v, ferr := rec.Int(field)
		if ferr != nil {
			return ferr, nil
		}
		if v > max {
			return &ValidationError{
				Field:   field,
				Code:    code,
				Message: message,
				TranslationValues: map[string]any{
					"field": field,
					"max":   max,
				},
			}, nil
		}
		return nil, nil
	}
}
