package lookup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KVStore is the minimal key-value surface a KVCachedChecker needs. Get must
// return ErrCacheMiss for unknown keys.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisStore adapts a go-redis client to KVStore.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// KVCachedChecker caches existence answers in a shared key-value store so
// multiple service instances reuse one another's lookups. The cache is best
// effort: a degraded store falls through to the backend instead of failing
// the validation pass.
type KVCachedChecker struct {
	next  Checker
	store KVStore
	ttl   time.Duration
}

func NewKVCachedChecker(next Checker, store KVStore, ttl time.Duration) *KVCachedChecker {
	return &KVCachedChecker{next: next, store: store, ttl: ttl}
}

func (c *KVCachedChecker) Exists(ctx context.Context, entity Entity, id int64) (bool, error) {
	key := fmt.Sprintf("lookup:%s:%d", entity, id)

	if v, err := c.store.Get(ctx, key); err == nil {
		return v == "1", nil
	}

	found, err := c.next.Exists(ctx, entity, id)
	if err != nil {
		return false, err
	}

	value := "0"
	if found {
		value = "1"
	}
	_ = c.store.Set(ctx, key, value, c.ttl)

	return found, nil
}
