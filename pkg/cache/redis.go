package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // prepended to every key
}

// RedisCache stores entries in Redis, relying on key expiry for TTLs.
// Transient connection failures are retried with backoff.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a Redis-backed cache. No connection is made until
// the first operation.
func NewRedisCache(cfg RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: cfg.Prefix,
	}
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get retrieves a value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	found := true
	err := RetryWithBackoff(ctx, func() error {
		b, err := c.client.Get(ctx, c.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			found = false
			return nil
		}
		if err != nil {
			return classify(err)
		}
		data = b
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, found, nil
}

// Set stores a value in Redis. A ttl of zero keeps the key forever.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return RetryWithBackoff(ctx, func() error {
		return classify(c.client.Set(ctx, c.prefix+key, data, ttl).Err())
	})
}

// Delete removes a key from Redis.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return RetryWithBackoff(ctx, func() error {
		return classify(c.client.Del(ctx, c.prefix+key).Err())
	})
}

// Close closes the Redis client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// classify marks connection-level failures as retryable network errors.
// Context errors are returned unchanged so cancellation stops retries.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
}

var _ Cache = (*RedisCache)(nil)
