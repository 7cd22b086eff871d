// ABOUTME: Redis cache backend using the go-redis client
// ABOUTME: Gives the result cache cross-process persistence with server-side TTLs

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"trends-app-api/core/interfaces"
	"trends-app-api/pkg/config"
)

// Client implements the Cache interface using Redis. Redis expires entries
// server-side, so a batch cached before a restart is reusable afterwards
// and already-expired entries simply read as misses.
type Client struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg config.RedisConfig) (*Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{client: client}, nil
}

// Get retrieves a value from Redis.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL. A ttl of 0 stores the
// value without expiration.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis. Deleting a non-existent key is not an
// error.
func (c *Client) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}
