package content

import (
	"github.com/collabkit/recordcheck/pkg/lookup"
	"github.com/collabkit/recordcheck/pkg/validator"
)

// FaqRules validates FAQ entries: the question text must be present and the
// owning organization must exist.
func FaqRules(c lookup.Checker) validator.RuleSet {
	return validator.NewRuleSet(KindFaq,
		validator.RequiredString("question"),
		exists(c, lookup.EntityOrganization, "org_id"),
	)
}
