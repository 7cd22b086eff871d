// ABOUTME: In-memory cache backend built on patrickmn/go-cache
// ABOUTME: Thread-safe with per-entry TTL and periodic cleanup of expired entries

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"trends-app-api/core/interfaces"
)

// Client implements the Cache interface with an in-process store. Entries
// expire per-key; a background janitor purges expired entries on the given
// cleanup interval. Safe for concurrent use across fetch tasks.
type Client struct {
	cache *gocache.Cache
}

// NewMemoryCache creates an in-memory cache. defaultExpiration applies to
// entries stored with a negative ttl; cleanupInterval controls the janitor.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *Client {
	return &Client{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, interfaces.ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		// Foreign value under our key; treat as a miss
		c.cache.Delete(key)
		return nil, interfaces.ErrCacheMiss
	}

	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value with the given TTL. A ttl of 0 stores the value
// without expiry.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl == 0 {
		ttl = gocache.NoExpiration
	}
	c.cache.Set(key, stored, ttl)
	return nil
}

// Delete removes a key from the cache.
func (c *Client) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// Flush removes every entry. Used by callers that want a cold start.
func (c *Client) Flush() {
	c.cache.Flush()
}
