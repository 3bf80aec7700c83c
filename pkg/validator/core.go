package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Machine-readable error codes shared across all rule sets. The code is the
// stable contract with callers and the messages catalog; Message is only a
// default English rendering.
const (
	CodeMissingField       = "missing_field"
	CodeEmptyField         = "empty_field"
	CodeInvalidType        = "invalid_type"
	CodeNotFound           = "not_found"
	CodeDateOrder          = "date_order"
	CodeInvariantViolation = "invariant_violation"
	CodeInvalidFile        = "invalid_file"
	CodeCorruptedFile      = "corrupted_file"
)

// ValidationError describes a single failed check on one record field.
type ValidationError struct {
	Field             string
	Code              string
	Message           string
	TranslationValues map[string]any
}

// ValidationErrors is the ordered collection of failures from one validation
// pass. It implements the error interface so a rejected record surfaces as a
// regular error return.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) HasCode(code string) bool {
	for _, err := range ve {
		if err.Code == code {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, err := range ve {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Codes returns the error codes in the order the rules reported them.
func (ve ValidationErrors) Codes() []string {
	codes := make([]string, 0, len(ve))
	for _, err := range ve {
		codes = append(codes, err.Code)
	}
	return codes
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule checks one aspect of a record. A nil *ValidationError means the check
// passed (or its precondition was unmet and the rule was skipped). A non-nil
// plain error reports a collaborator failure and aborts the whole pass; it is
// never folded into the validation verdict.
type Rule func(ctx context.Context, rec Record) (*ValidationError, error)

// Apply runs rules against the record in declaration order, collecting every
// failure rather than stopping at the first. It returns nil when the record is
// accepted, ValidationErrors when it is rejected, or the collaborator error
// as-is when a rule could not be evaluated.
func Apply(ctx context.Context, rec Record, rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		ve, err := rule(ctx, rec)
		if err != nil {
			return err
		}
		if ve != nil {
			errs = append(errs, *ve)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// RuleSet is the ordered set of rules bound to one record kind. Built once at
// startup and immutable afterwards, so concurrent validations can share it.
type RuleSet struct {
	kind  string
	rules []Rule
}

func NewRuleSet(kind string, rules ...Rule) RuleSet {
	return RuleSet{kind: kind, rules: rules}
}

func (rs RuleSet) Kind() string {
	return rs.kind
}

// Validate runs the full rule set against one record.
func (rs RuleSet) Validate(ctx context.Context, rec Record) error {
	return Apply(ctx, rec, rs.rules...)
}

// Registry dispatches validation by record kind.
type Registry map[string]RuleSet

func NewRegistry(sets ...RuleSet) Registry {
	reg := make(Registry, len(sets))
	for _, rs := range sets {
		reg[rs.Kind()] = rs
	}
	return reg
}

func (reg Registry) Validate(ctx context.Context, kind string, rec Record) error {
	rs, ok := reg[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return rs.Validate(ctx, rec)
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err is a validation verdict as opposed to
// a collaborator or dispatch failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
