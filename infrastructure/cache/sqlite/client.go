// ABOUTME: SQLite cache backend for durable, file-based result caching
// ABOUTME: Cached batches survive restarts; expired or corrupt rows read as misses

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"trends-app-api/core/interfaces"
)

// noExpiry is the expiry column value for entries stored indefinitely.
const noExpiry = math.MaxInt64

// Client implements the Cache interface using a SQLite file. It gives the
// result cache optional cross-process persistence: entries written before
// a restart are served afterwards as long as their expiry has not passed.
// A missing or unreadable file never blocks startup beyond the open error.
type Client struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteCache opens (or creates) the cache database at filePath.
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "trends_cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS trend_cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_trend_cache_expiry ON trend_cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value, treating expired rows as misses.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	query := "SELECT value FROM trend_cache WHERE key = ? AND expiry > ?"
	err := c.db.QueryRowContext(ctx, query, key, time.Now().Unix()).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value with the given TTL. A ttl of 0 stores the value
// without expiry.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	expiry := int64(noExpiry)
	if ttl != 0 {
		expiry = time.Now().Add(ttl).Unix()
	}
	query := "INSERT OR REPLACE INTO trend_cache (key, value, expiry) VALUES (?, ?, ?)"

	if _, err := c.db.ExecContext(ctx, query, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache.
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	if _, err := c.db.ExecContext(ctx, "DELETE FROM trend_cache WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Clear removes every cached batch.
func (c *Client) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM trend_cache"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// cleanupRoutine periodically removes expired entries
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		_, _ = c.db.Exec("DELETE FROM trend_cache WHERE expiry <= ?", time.Now().Unix())
	}
}

// Close closes the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}
