package lookup

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cacheKey struct {
	entity Entity
	id     int64
}

// CachedChecker caches existence answers in an in-process expirable LRU.
// Both positive and negative answers are cached: records referencing a
// missing entity tend to retry quickly, and the TTL bounds staleness in
// either direction. Backend failures are never cached.
type CachedChecker struct {
	next  Checker
	cache *expirable.LRU[cacheKey, bool]
}

func NewCachedChecker(next Checker, size int, ttl time.Duration) *CachedChecker {
	return &CachedChecker{
		next:  next,
		cache: expirable.NewLRU[cacheKey, bool](size, nil, ttl),
	}
}

func (c *CachedChecker) Exists(ctx context.Context, entity Entity, id int64) (bool, error) {
	key := cacheKey{entity: entity, id: id}
	if found, ok := c.cache.Get(key); ok {
		return found, nil
	}

	found, err := c.next.Exists(ctx, entity, id)
	if err != nil {
		return false, err
	}

	c.cache.Add(key, found)
	return found, nil
}
