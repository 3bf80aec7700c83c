package messages

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/collabkit/recordcheck/pkg/validator"
)

// DefaultLocale is used when the requested locale has no catalog entry.
const DefaultLocale = "en"

// Catalog maps (locale, error code) to message templates. It is built once at
// startup and read-only afterwards, so concurrent requests can share one
// instance without locking.
type Catalog struct {
	defaultLocale string
	messages      map[string]map[string]string
	logger        *slog.Logger
}

// Option configures a Catalog during construction.
type Option func(*Catalog) error

// WithDefaultLocale changes the fallback locale.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		c.defaultLocale = locale
		return nil
	}
}

// WithLogger sets the logger used to report missing catalog entries.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithMessages merges a code-to-template map for one locale. Later options
// override earlier entries for the same code.
func WithMessages(locale string, msgs map[string]string) Option {
	return func(c *Catalog) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		c.merge(locale, msgs)
		return nil
	}
}

// WithYAML merges locale catalogs parsed from a YAML document.
func WithYAML(r io.Reader) Option {
	return func(c *Catalog) error {
		parsed, err := ParseYAML(r)
		if err != nil {
			return err
		}
		for locale, msgs := range parsed {
			c.merge(locale, msgs)
		}
		return nil
	}
}

// New builds a Catalog seeded with the built-in English messages for the
// whole error taxonomy.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		defaultLocale: DefaultLocale,
		messages: map[string]map[string]string{
			DefaultLocale: defaultMessages(),
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) merge(locale string, msgs map[string]string) {
	dst, ok := c.messages[locale]
	if !ok {
		dst = make(map[string]string, len(msgs))
		c.messages[locale] = dst
	}
	for code, tmpl := range msgs {
		dst[code] = tmpl
	}
}

// Message renders the template for (locale, code) with the given values.
// It falls back to the default locale, then to the bare code, logging the
// miss so incomplete catalogs are visible in production.
func (c *Catalog) Message(locale, code string, values map[string]any) string {
	if tmpl, ok := c.lookup(locale, code); ok {
		return interpolate(tmpl, values)
	}
	if tmpl, ok := c.lookup(c.defaultLocale, code); ok {
		return interpolate(tmpl, values)
	}
	c.logger.Warn("message not found", "code", code, "locale", locale)
	return code
}

func (c *Catalog) lookup(locale, code string) (string, bool) {
	msgs, ok := c.messages[locale]
	if !ok {
		return "", false
	}
	tmpl, ok := msgs[code]
	return tmpl, ok
}

// LocalizedError is one validation failure rendered for a locale.
type LocalizedError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Localize renders every error of a validation verdict for the given locale,
// preserving order.
func (c *Catalog) Localize(locale string, errs validator.ValidationErrors) []LocalizedError {
	out := make([]LocalizedError, 0, len(errs))
	for _, err := range errs {
		out = append(out, LocalizedError{
			Field:   err.Field,
			Code:    err.Code,
			Message: c.Message(locale, err.Code, err.TranslationValues),
		})
	}
	return out
}

var placeholderRegex = regexp.MustCompile(`\{([a-z_]+)\}`)

// interpolate substitutes named placeholders in the form "{key}". Unknown
// placeholders are left as-is so broken catalogs fail loudly in review.
func interpolate(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[1 : len(match)-1]
		if v, ok := values[name]; ok {
			return fmt.Sprintf("%v", v)
		}
		return match
	})
}
