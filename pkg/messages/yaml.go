package messages

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads locale catalogs from a YAML document shaped as
//
//	de:
//	  empty_field: "{field} darf nicht leer sein"
//	  not_found: "..."
//
// and returns locale -> code -> template.
func ParseYAML(r io.Reader) (map[string]map[string]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	var parsed map[string]map[string]string
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	for locale, msgs := range parsed {
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale code", ErrFailedToParseYAML)
		}
		if len(msgs) == 0 {
			return nil, fmt.Errorf("%w: locale %q has no messages", ErrFailedToParseYAML, locale)
		}
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: no locales found", ErrFailedToParseYAML)
	}

	return parsed, nil
}
