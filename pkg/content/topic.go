package content

import (
	"context"

	"github.com/collabkit/recordcheck/pkg/validator"
)

// TopicRules validates topics. Beyond the usual emptiness and date-order
// checks, the active flag and the deprecation date must agree: exactly one of
// "active without deprecation date" and "inactive with deprecation date" is
// acceptable.
func TopicRules() validator.RuleSet {
	return validator.NewRuleSet(KindTopic,
		validator.RequiredString("name"),
		validator.RequiredString("description"),
		activeWithoutDeprecation(),
		inactiveRequiresDeprecation(),
		validator.DateOrdered("creation_date", "deprecation_date"),
	)
}

func activeWithoutDeprecation() validator.Rule {
	return func(_ context.Context, rec validator.Record) (*validator.ValidationError, error) {
		active, ferr := rec.Bool("active")
		if ferr != nil {
			return ferr, nil
		}
		_, set, ferr := rec.OptionalDate("deprecation_date")
		if ferr != nil {
			return ferr, nil
		}
		if active && set {
			return &validator.ValidationError{
				Field:   "deprecation_date",
				Code:    validator.CodeInvariantViolation,
				Message: "active topics cannot have a deprecation date",
				TranslationValues: map[string]any{
					"field": "deprecation_date",
					"other": "active",
				},
			}, nil
		}
		return nil, nil
	}
}

func inactiveRequiresDeprecation() validator.Rule {
	return func(_ context.Context, rec validator.Record) (*validator.ValidationError, error) {
		active, ferr := rec.Bool("active")
		if ferr != nil {
			return ferr, nil
		}
		_, set, ferr := rec.OptionalDate("deprecation_date")
		if ferr != nil {
			return ferr, nil
		}
		if !active && !set {
			return &validator.ValidationError{
				Field:   "deprecation_date",
				Code:    validator.CodeInvariantViolation,
				Message: "inactive topics must have a deprecation date",
				TranslationValues: map[string]any{
					"field": "deprecation_date",
					"other": "active",
				},
			}, nil
		}
		return nil, nil
	}
}
