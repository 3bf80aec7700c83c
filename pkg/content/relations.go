package content

import (
	"github.com/collabkit/recordcheck/pkg/lookup"
	"github.com/collabkit/recordcheck/pkg/validator"
)

// Join records carry nothing but foreign keys; validation is purely
// referential integrity on both sides.

func ResourceTopicRules(c lookup.Checker) validator.RuleSet {
	return validator.NewRuleSet(KindResourceTopic,
		exists(c, lookup.EntityResource, "resource_id"),
		exists(c, lookup.EntityTopic, "topic_id"),
	)
}

func ResourceTagRules(c lookup.Checker) validator.RuleSet {
	return validator.NewRuleSet(KindResourceTag,
		exists(c, lookup.EntityResource, "resource_id"),
		exists(c, lookup.EntityTag, "tag_id"),
	)
}

func TopicFormatRules(c lookup.Checker) validator.RuleSet {
	return validator.NewRuleSet(KindTopicFormat,
		exists(c, lookup.EntityTopic, "topic_id"),
		exists(c, lookup.EntityFormat, "format_id"),
	)
}
