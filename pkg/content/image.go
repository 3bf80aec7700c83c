package content

import (
	"context"
	"fmt"

	"github.com/collabkit/recordcheck/pkg/imagecheck"
	"github.com/collabkit/recordcheck/pkg/validator"
)

// DefaultMaxImageBytes bounds uploads to 10 MiB.
const DefaultMaxImageBytes = 10485760

// allowedImageSuffixes is matched case-sensitively against the uploaded
// filename.
var allowedImageSuffixes = []string{".jpg", ".jpeg", ".png"}

// ImageConfig tunes the upload limits.
type ImageConfig struct {
	MaxBytes int64 `env:"CONTENT_IMAGE_MAX_BYTES" envDefault:"10485760"` // MaxBytes is the largest accepted upload in bytes.
}

// ImageRules validates uploaded images: an allow-listed filename suffix, a
// size bound, and a decode probe against the image collaborator.
func ImageRules(p imagecheck.Prober, cfg ImageConfig) validator.RuleSet {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}

	return validator.NewRuleSet(KindImage,
		validator.RequiredSuffix("filename", validator.CodeInvalidFile,
			"the image must be in .jpg, .jpeg, or .png format", allowedImageSuffixes...),
		validator.MaxInt("size", maxBytes, validator.CodeInvalidFile,
			fmt.Sprintf("the image must be no more than %d bytes in size", maxBytes)),
		imageDecodes("data", p),
	)
}

// imageDecodes maps any probe failure to corrupted_file: a malformed header,
// a truncated stream, and an unsupported encoding are the same verdict from
// the caller's point of view.
func imageDecodes(field string, p imagecheck.Prober) validator.Rule {
	return func(_ context.Context, rec validator.Record) (*validator.ValidationError, error) {
		data, ferr := rec.Blob(field)
		if ferr != nil {
			return ferr, nil
		}
		if err := p.Probe(data); err != nil {
			return &validator.ValidationError{
				Field:   field,
				Code:    validator.CodeCorruptedFile,
				Message: "the image is not valid",
				TranslationValues: map[string]any{
					"field": field,
				},
			}, nil
		}
		return nil, nil
	}
}
