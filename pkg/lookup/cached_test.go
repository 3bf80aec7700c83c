package lookup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabkit/recordcheck/pkg/lookup"
)

// countingChecker records how often the backend was asked.
type countingChecker struct {
	ids   map[lookup.Entity]map[int64]bool
	err   error
	calls int
}

func (c *countingChecker) Exists(_ context.Context, entity lookup.Entity, id int64) (bool, error) {
	c.calls++
	if c.err != nil {
		return false, c.err
	}
	return c.ids[entity][id], nil
}

func TestCachedChecker_Exists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("caches positive and negative answers", func(t *testing.T) {
		backend := &countingChecker{ids: map[lookup.Entity]map[int64]bool{
			lookup.EntityTopic: {1: true},
		}}
		checker := lookup.NewCachedChecker(backend, 16, time.Minute)

		for i := 0; i < 3; i++ {
			found, err := checker.Exists(ctx, lookup.EntityTopic, 1)
			require.NoError(t, err)
			assert.True(t, found)

			found, err = checker.Exists(ctx, lookup.EntityTopic, 2)
			require.NoError(t, err)
			assert.False(t, found)
		}

		assert.Equal(t, 2, backend.calls)
	})

	t.Run("does not cache backend failures", func(t *testing.T) {
		backend := &countingChecker{err: errors.New("replica down")}
		checker := lookup.NewCachedChecker(backend, 16, time.Minute)

		_, err := checker.Exists(ctx, lookup.EntityTag, 1)
		require.Error(t, err)
		_, err = checker.Exists(ctx, lookup.EntityTag, 1)
		require.Error(t, err)

		assert.Equal(t, 2, backend.calls)
	})
}
