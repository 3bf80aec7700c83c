package validator

import (
	"fmt"
	"time"
)

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value any
}

// F is a shorthand Field constructor for building records inline.
func F(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// Record is an ordered set of fields decoded from an inbound request by the
// surrounding web layer. A nil Value means the field was supplied but unset,
// which is distinct from the field being absent altogether. Records are
// read-only for the duration of a validation pass.
type Record struct {
	fields []Field
}

func NewRecord(fields ...Field) Record {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return Record{fields: fs}
}

// Lookup returns the raw value of a field and whether the field is present.
func (r Record) Lookup(name string) (any, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Has reports whether a field is present, set or not.
func (r Record) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// IsSet reports whether a field is present with a non-nil value.
func (r Record) IsSet(name string) bool {
	v, ok := r.Lookup(name)
	return ok && v != nil
}

// FieldNames returns the field names in declaration order.
func (r Record) FieldNames() []string {
	names := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		names = append(names, f.Name)
	}
	return names
}

// String dereferences a string field. An absent field reports missing_field,
// a value of any other dynamic type reports invalid_type.
func (r Record) String(name string) (string, *ValidationError) {
	v, ok := r.Lookup(name)
	if !ok {
		return "", missingField(name)
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(name, "a string", v)
	}
	return s, nil
}

// Int dereferences an integer field. Plain int values are accepted alongside
// int64 since wire decoding does not guarantee a width.
func (r Record) Int(name string) (int64, *ValidationError) {
	v, ok := r.Lookup(name)
	if !ok {
		return 0, missingField(name)
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	}
	return 0, wrongType(name, "an integer", v)
}

func (r Record) Bool(name string) (bool, *ValidationError) {
	v, ok := r.Lookup(name)
	if !ok {
		return false, missingField(name)
	}
	b, ok := v.(bool)
	if !ok {
		return false, wrongType(name, "a boolean", v)
	}
	return b, nil
}

func (r Record) Date(name string) (time.Time, *ValidationError) {
	v, ok := r.Lookup(name)
	if !ok {
		return time.Time{}, missingField(name)
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, wrongType(name, "a date", v)
	}
	return t, nil
}

// OptionalDate dereferences a date field that may be unset. The second return
// is false when the field is present but nil. An absent field is still a
// missing_field error: callers must supply every referenced field.
func (r Record) OptionalDate(name string) (time.Time, bool, *ValidationError) {
	v, ok := r.Lookup(name)
	if !ok {
		return time.Time{}, false, missingField(name)
	}
	if v == nil {
		return time.Time{}, false, nil
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, false, wrongType(name, "a date", v)
	}
	return t, true, nil
}

func (r Record) Blob(name string) ([]byte, *ValidationError) {
	v, ok := r.Lookup(name)
	if !ok {
		return nil, missingField(name)
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, wrongType(name, "binary data", v)
	}
	return b, nil
}

func missingField(name string) *ValidationError {
	return &ValidationError{
		Field:   name,
		Code:    CodeMissingField,
		Message: "field is missing from the record",
		TranslationValues: map[string]any{
			"field": name,
		},
	}
}

func wrongType(name, want string, got any) *ValidationError {
	return &ValidationError{
		Field:   name,
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("must be %s", want),
		TranslationValues: map[string]any{
			"field": name,
			"want":  want,
			"got":   fmt.Sprintf("%T", got),
		},
	}
}
