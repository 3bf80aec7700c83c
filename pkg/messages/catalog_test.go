package messages_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabkit/recordcheck/pkg/messages"
	"github.com/collabkit/recordcheck/pkg/validator"
)

func TestCatalog_Message(t *testing.T) {
	t.Parallel()

	t.Run("renders built-in defaults with values", func(t *testing.T) {
		catalog, err := messages.New()
		require.NoError(t, err)

		msg := catalog.Message("en", validator.CodeEmptyField, map[string]any{"field": "question"})
		assert.Equal(t, "question cannot be empty", msg)

		msg = catalog.Message("en", validator.CodeNotFound, map[string]any{"entity": "organization"})
		assert.Equal(t, "the referenced organization does not exist", msg)
	})

	t.Run("falls back to default locale", func(t *testing.T) {
		catalog, err := messages.New()
		require.NoError(t, err)

		msg := catalog.Message("de", validator.CodeEmptyField, map[string]any{"field": "name"})
		assert.Equal(t, "name cannot be empty", msg)
	})

	t.Run("falls back to the bare code for unknown codes", func(t *testing.T) {
		catalog, err := messages.New()
		require.NoError(t, err)

		assert.Equal(t, "nonexistent_code", catalog.Message("en", "nonexistent_code", nil))
	})

	t.Run("keeps unknown placeholders visible", func(t *testing.T) {
		catalog, err := messages.New(messages.WithMessages("en", map[string]string{
			"custom": "{field} and {missing}",
		}))
		require.NoError(t, err)

		msg := catalog.Message("en", "custom", map[string]any{"field": "name"})
		assert.Equal(t, "name and {missing}", msg)
	})

	t.Run("added locale overrides fallback", func(t *testing.T) {
		catalog, err := messages.New(messages.WithMessages("de", map[string]string{
			validator.CodeEmptyField: "{field} darf nicht leer sein",
		}))
		require.NoError(t, err)

		msg := catalog.Message("de", validator.CodeEmptyField, map[string]any{"field": "name"})
		assert.Equal(t, "name darf nicht leer sein", msg)
	})
}

func TestCatalog_Localize(t *testing.T) {
	t.Parallel()

	catalog, err := messages.New()
	require.NoError(t, err)

	var verrs validator.ValidationErrors
	verrs.Add(validator.ValidationError{
		Field:             "name",
		Code:              validator.CodeEmptyField,
		TranslationValues: map[string]any{"field": "name"},
	})
	verrs.Add(validator.ValidationError{
		Field:             "deletion_date",
		Code:              validator.CodeDateOrder,
		TranslationValues: map[string]any{"field": "deletion_date", "start": "creation_date"},
	})

	localized := catalog.Localize("en", verrs)
	require.Len(t, localized, 2)
	assert.Equal(t, "name", localized[0].Field)
	assert.Equal(t, "name cannot be empty", localized[0].Message)
	assert.Equal(t, validator.CodeDateOrder, localized[1].Code)
	assert.Equal(t, "deletion_date cannot precede creation_date", localized[1].Message)
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses locale catalogs", func(t *testing.T) {
		doc := `
de:
  empty_field: "{field} darf nicht leer sein"
  not_found: "{entity} wurde nicht gefunden"
es:
  empty_field: "{field} no puede estar vacío"
`
		parsed, err := messages.ParseYAML(strings.NewReader(doc))
		require.NoError(t, err)
		require.Len(t, parsed, 2)
		assert.Equal(t, "{field} darf nicht leer sein", parsed["de"]["empty_field"])
		assert.Equal(t, "{field} no puede estar vacío", parsed["es"]["empty_field"])
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		_, err := messages.ParseYAML(strings.NewReader("de: [not, a, map]"))
		require.Error(t, err)
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})

	t.Run("rejects empty documents", func(t *testing.T) {
		_, err := messages.ParseYAML(strings.NewReader(""))
		require.Error(t, err)
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})
}

func TestCatalogYAMLOption(t *testing.T) {
	t.Parallel()

	doc := `
de:
  empty_field: "{field} darf nicht leer sein"
`
	catalog, err := messages.New(messages.WithYAML(strings.NewReader(doc)))
	require.NoError(t, err)

	msg := catalog.Message("de", validator.CodeEmptyField, map[string]any{"field": "name"})
	assert.Equal(t, "name darf nicht leer sein", msg)

	// Codes absent from the German catalog still resolve through English.
	msg = catalog.Message("de", validator.CodeCorruptedFile, nil)
	assert.Equal(t, "the image is not valid", msg)
}
