package content

import "github.com/collabkit/recordcheck/pkg/validator"

// TaskRules validates tasks: name and description are mandatory and a task
// cannot be deleted before it was created.
func TaskRules() validator.RuleSet {
	return validator.NewRuleSet(KindTask,
		validator.RequiredString("name"),
		validator.RequiredString("description"),
		validator.DateOrdered("creation_date", "deletion_date"),
	)
}
