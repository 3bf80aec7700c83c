package content

import "github.com/collabkit/recordcheck/pkg/validator"

// ResourceRules validates shared resources. The only constraint beyond the
// storage schema is that the flag counter, when supplied, is an integer.
func ResourceRules() validator.RuleSet {
	return validator.NewRuleSet(KindResource,
		validator.OptionalInt("total_flags"),
	)
}
