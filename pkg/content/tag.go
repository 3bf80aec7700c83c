package content

import "github.com/collabkit/recordcheck/pkg/validator"

// TagRules validates tags: the text is all there is.
func TagRules() validator.RuleSet {
	return validator.NewRuleSet(KindTag,
		validator.RequiredString("text"),
	)
}
