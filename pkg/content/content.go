package content

import (
	"context"
	"fmt"

	"github.com/collabkit/recordcheck/pkg/imagecheck"
	"github.com/collabkit/recordcheck/pkg/lookup"
	"github.com/collabkit/recordcheck/pkg/validator"
)

// Record kinds validated by this package.
const (
	KindFaq           = "faq"
	KindResource      = "resource"
	KindTask          = "task"
	KindTopic         = "topic"
	KindTag           = "tag"
	KindResourceTopic = "resource_topic"
	KindResourceTag   = "resource_tag"
	KindTopicFormat   = "topic_format"
	KindImage         = "image"
)

// Deps are the external collaborators the rule sets validate against.
type Deps struct {
	Lookup      lookup.Checker
	Prober      imagecheck.Prober
	ImageLimits ImageConfig
}

// NewRegistry assembles the rule sets for every record kind. Call it once at
// startup; the returned registry is read-only and shared across requests.
func NewRegistry(deps Deps) validator.Registry {
	return validator.NewRegistry(
		FaqRules(deps.Lookup),
		ResourceRules(),
		TaskRules(),
		TopicRules(),
		TagRules(),
		ResourceTopicRules(deps.Lookup),
		ResourceTagRules(deps.Lookup),
		TopicFormatRules(deps.Lookup),
		ImageRules(deps.Prober, deps.ImageLimits),
	)
}

// exists adapts a lookup.Checker into a not_found rule for an id field. A
// checker failure aborts the validation pass; it is never reported as
// not_found.
func exists(c lookup.Checker, entity lookup.Entity, field string) validator.Rule {
	return func(ctx context.Context, rec validator.Record) (*validator.ValidationError, error) {
		id, ferr := rec.Int(field)
		if ferr != nil {
			return ferr, nil
		}

		found, err := c.Exists(ctx, entity, id)
		if err != nil {
			return nil, err
		}
		if !found {
			return &validator.ValidationError{
				Field:   field,
				Code:    validator.CodeNotFound,
				Message: fmt.Sprintf("referenced %s does not exist", entity),
				TranslationValues: map[string]any{
					"field":  field,
					"entity": string(entity),
				},
			}, nil
		}
		return nil, nil
	}
}
