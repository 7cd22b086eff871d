// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for cache, fetching, scoring and the daemon

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	coreerrors "trends-app-api/core/errors"
)

// Config holds all application configuration
type Config struct {
	// LogLevel controls logger verbosity (debug/info/warn/error)
	LogLevel string

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Fetch contains fetch coordination configuration
	Fetch FetchConfig

	// HTTP contains outbound HTTP client configuration
	HTTP HTTPConfig

	// Daemon contains the periodic ingestion loop configuration
	Daemon DaemonConfig

	// Metrics contains the metrics exposition configuration
	Metrics MetricsConfig

	// ScoringConfigPath optionally points at a YAML file overriding the
	// curated scoring tables; empty means defaults only
	ScoringConfigPath string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the cache database file location
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int

	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int
}

// FetchConfig holds fetch coordination configuration
type FetchConfig struct {
	// TimeoutSeconds bounds each source adapter's fetch individually
	TimeoutSeconds int

	// CacheTTLSeconds is the default result-cache lifetime per source
	CacheTTLSeconds int

	// SourceTTLs overrides CacheTTLSeconds per source, parsed from a
	// comma list of name:seconds pairs (e.g. "ArXiv:600,GitHub:180")
	SourceTTLs map[string]int

	// MaxWorkers caps concurrent fetches; 0 sizes the pool to the
	// number of adapters
	MaxWorkers int
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	// TimeoutSeconds is the per-request timeout
	TimeoutSeconds int

	// RateLimit is the maximum outbound requests per second; 0 disables
	// rate limiting
	RateLimit float64

	// RateBurst is the rate limiter burst size
	RateBurst int
}

// MetricsConfig holds metrics exposition configuration
type MetricsConfig struct {
	// Address is the listen address for the prometheus scrape endpoint
	// (e.g. ":9090"); empty disables exposition
	Address string
}

// DaemonConfig holds the periodic ingestion loop configuration
type DaemonConfig struct {
	// IntervalSeconds is the delay between ingestion runs
	IntervalSeconds int

	// Topics is the comma-separated list of watched topic names
	Topics []string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "trends_cache.db"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 300),
				CleanupInterval:   getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", 600),
			},
		},
		Fetch: FetchConfig{
			TimeoutSeconds:  getEnvAsIntOrDefault("FETCH_TIMEOUT", 60),
			CacheTTLSeconds: getEnvAsIntOrDefault("CACHE_TTL", 180),
			SourceTTLs:      parseSourceTTLs(os.Getenv("SOURCE_TTLS")),
			MaxWorkers:      getEnvAsIntOrDefault("FETCH_MAX_WORKERS", 0),
		},
		HTTP: HTTPConfig{
			TimeoutSeconds: getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
			RateLimit:      getEnvAsFloatOrDefault("HTTP_RATE_LIMIT", 0),
			RateBurst:      getEnvAsIntOrDefault("HTTP_RATE_BURST", 1),
		},
		Daemon: DaemonConfig{
			IntervalSeconds: getEnvAsIntOrDefault("FETCH_INTERVAL", 900),
			Topics:          parseList(os.Getenv("TOPICS")),
		},
		Metrics: MetricsConfig{
			Address: getEnvOrDefault("METRICS_ADDRESS", ""),
		},
		ScoringConfigPath: getEnvOrDefault("SCORING_CONFIG", ""),
	}

	return cfg, nil
}

// FetchTimeout returns the per-adapter timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// CacheTTL returns the default result-cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Fetch.CacheTTLSeconds) * time.Second
}

// SourceTTLs returns the per-source TTL overrides as durations.
func (c *Config) SourceTTLs() map[string]time.Duration {
	if len(c.Fetch.SourceTTLs) == 0 {
		return nil
	}
	ttls := make(map[string]time.Duration, len(c.Fetch.SourceTTLs))
	for source, seconds := range c.Fetch.SourceTTLs {
		ttls[source] = time.Duration(seconds) * time.Second
	}
	return ttls
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return &coreerrors.ValidationError{Field: "cache.type", Message: "must be 'memory', 'redis' or 'sqlite'"}
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return &coreerrors.ValidationError{Field: "cache.redis.address", Message: "cannot be empty when using redis cache"}
	}

	if c.Fetch.TimeoutSeconds < 1 {
		return &coreerrors.ValidationError{Field: "fetch.timeout", Message: "must be at least 1 second"}
	}

	if c.Fetch.CacheTTLSeconds < 1 {
		return &coreerrors.ValidationError{Field: "fetch.cache_ttl", Message: "must be at least 1 second"}
	}

	if c.Daemon.IntervalSeconds < 1 {
		return &coreerrors.ValidationError{Field: "daemon.interval", Message: "must be at least 1 second"}
	}

	return nil
}

// parseSourceTTLs parses "Name:seconds" pairs from a comma-separated list.
// Malformed pairs are skipped.
func parseSourceTTLs(raw string) map[string]int {
	if raw == "" {
		return nil
	}

	ttls := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		name, value, found := strings.Cut(strings.TrimSpace(pair), ":")
		if !found {
			continue
		}
		seconds, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || seconds < 1 {
			continue
		}
		ttls[strings.TrimSpace(name)] = seconds
	}

	if len(ttls) == 0 {
		return nil
	}
	return ttls
}

// parseList splits a comma-separated list, dropping empty entries.
func parseList(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string
	for _, v := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
