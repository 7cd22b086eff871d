// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and known-item storage.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: Durable SQLite-backed cache implementation
// - http/standard: Standard library HTTP client with retries and rate limiting
// - logger/logrus: Structured logger backed by logrus
// - storage/memory: In-memory known-item index for deduplication
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(5*time.Minute, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cfg := config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	}
//	cache, err := redis.NewRedisCache(cfg)
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures
// and an optional outbound rate limit:
//
//	client := standard.NewClient(30*time.Second, standard.WithRateLimit(2, 1))
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.New("info")
//	logger.Info("Fetched source", map[string]interface{}{
//	    "source": "Hacker News",
//	    "items":  42,
//	})
package infrastructure
