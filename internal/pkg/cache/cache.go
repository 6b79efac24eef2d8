package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache errors
var (
	ErrCacheNotAvailable = errors.New("cache not available")
	ErrCacheMiss         = errors.New("cache miss")
)

// DefaultTTL bounds how stale a cached catalog page may get before the
// next reader goes back to the database.
const DefaultTTL = 5 * time.Minute

// Cache provides a JSON read cache over redis. A nil client is valid and
// turns every operation into a no-op error, so callers can treat redis as
// optional and fall through to the database.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a cache with the given key prefix. client may be nil.
func New(client *redis.Client, prefix string) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
		ttl:    DefaultTTL,
	}
}

// key generates a cache key with the configured prefix
func (c *Cache) key(key string) string {
	return fmt.Sprintf("%s:%s", c.prefix, key)
}

// Get retrieves and unmarshals data from the cache into dest
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}

	return nil
}

// Set marshals and stores value under key with the default TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}

	return nil
}

// Delete removes a single key
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

// InvalidateAll removes every key under this cache's prefix. Used after
// writes so readers never observe a deleted or stale entry past one scan.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	if c.client == nil {
		return ErrCacheNotAvailable
	}

	var cursor uint64
	pattern := c.prefix + ":*"
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan error: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache delete error: %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return nil
}
