package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatusCache implements usecase.StatusCache using Redis.
type StatusCache struct {
	client *redis.Client
	prefix string
}

// NewStatusCache creates a new StatusCache.
func NewStatusCache(client *redis.Client) *StatusCache {
	return &StatusCache{
		client: client,
		prefix: "creditgate:",
	}
}

// Get retrieves a cached value by key. A missing key yields (nil, nil).
func (c *StatusCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	return raw, nil
}

// Set stores a value with TTL.
func (c *StatusCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Delete removes a key.
func (c *StatusCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
