package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore defines a public type used by credcheck APIs.
//
// RedisStore instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore describes the newredisstore operation and its observable behavior.
//
// NewRedisStore wraps an existing Redis client. The prefix, if non-empty, is
// prepended to every key before lookup so credential properties can share a
// database with unrelated keys.
// NewRedisStore does not mutate shared global state and can be used concurrently.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

// Lookup describes the lookup operation and its observable behavior.
//
// Lookup maps a missing key to (_, false, nil) and wraps transport failures
// in ErrUnavailable so callers can distinguish outage from absence.
// Lookup does not mutate shared global state and can be used concurrently.
func (s *RedisStore) Lookup(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return val, true, nil
}
