package validator

import (
	"context"
	"fmt"
)

// DateOrdered validates that the end date field, when set, does not precede
// the start date field. The rule is skipped when the end date is unset.
func DateOrdered(startField, endField string) Rule {
	return func(_ context.Context, rec Record) (*ValidationError, error) {
		end, set, ferr := rec.OptionalDate(endField)
		if ferr != nil {
			return ferr, nil
		}
		if !set {
			return nil, nil
		}
		start, ferr := rec.Date(startField)
		if ferr != nil {
			return ferr, nil
		}
		if end.Before(start) {
			return &ValidationError{
				Field:   endField,
				Code:    CodeDateOrder,
				Message: fmt.Sprintf("cannot precede %s", startField),
				TranslationValues: map[string]any{
					"field": endField,
					"start": startField,
				},
			}, nil
		}
		return nil, nil
	}
}
