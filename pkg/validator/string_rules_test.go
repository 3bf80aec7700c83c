package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabkit/recordcheck/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rule := validator.RequiredString("question")

	t.Run("passes for non-blank value", func(t *testing.T) {
		ve, err := rule(ctx, validator.NewRecord(validator.F("question", "What is this?")))
		require.NoError(t, err)
		assert.Nil(t, ve)
	})

	t.Run("rejects empty string", func(t *testing.T) {
		ve, err := rule(ctx, validator.NewRecord(validator.F("question", "")))
		require.NoError(t, err)
		require.NotNil(t, ve)
		assert.Equal(t, validator.CodeEmptyField, ve.Code)
		assert.Equal(t, "question", ve.Field)
	})

	t.Run("rejects whitespace-only string", func(t *testing.T) {
		ve, err := rule(ctx, validator.NewRecord(validator.F("question", "  \t ")))
		require.NoError(t, err)
		require.NotNil(t, ve)
		assert.Equal(t, validator.CodeEmptyField, ve.Code)
	})

	t.Run("reports missing field", func(t *testing.T) {
		ve, err := rule(ctx, validator.NewRecord())
		require.NoError(t, err)
		require.NotNil(t, ve)
		assert.Equal(t, validator.CodeMissingField, ve.Code)
		assert.Equal(t, "question", ve.Field)
	})
}

func TestRequiredSuffix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rule := validator.RequiredSuffix("filename", validator.CodeInvalidFile, "unsupported format", ".jpg", ".jpeg", ".png")

	t.Run("passes for allowed suffix", func(t *testing.T) {
		for _, name := range []string{"a.jpg", "b.jpeg", "c.png"} {
			ve, err := rule(ctx, validator.NewRecord(validator.F("filename", name)))
			require.NoError(t, err)
			assert.Nil(t, ve, name)
		}
	})

	t.Run("rejects other suffixes", func(t *testing.T) {
		ve, err := rule(ctx, validator.NewRecord(validator.F("filename", "a.gif")))
		require.NoError(t, err)
		require.NotNil(t, ve)
		assert.Equal(t, validator.CodeInvalidFile, ve.Code)
		assert.Equal(t, "unsupported format", ve.Message)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		ve, err := rule(ctx, validator.NewRecord(validator.F("filename", "a.PNG")))
		require.NoError(t, err)
		assert.NotNil(t, ve)
	})
}
