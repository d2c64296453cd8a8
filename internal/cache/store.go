package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"arenaduo/internal/logging"
)

// Store is a TTL-bounded key/value cache. Implementations must treat Put as
// best effort; a failed write never fails a request.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisStore implements Store on a Redis string keyspace.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore builds a Redis-backed cache store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the cached value for key. The second return value is false on
// a miss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Put stores value under key with the given TTL.
func (s *RedisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// PutAsync writes to the store on a background goroutine so callers never
// wait on cache persistence. Failures are logged and dropped. The write uses
// its own deadline because the request context may already be done.
func PutAsync(store Store, key string, value []byte, ttl time.Duration) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Put(ctx, key, value, ttl); err != nil {
			logging.Logger().Warnf("cache put failed for %s: %v", key, err)
		}
	}()
}
