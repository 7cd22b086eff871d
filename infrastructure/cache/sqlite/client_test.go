package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"trends-app-api/core/interfaces"
)

func newTestCache(t *testing.T) *Client {
	t.Helper()

	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestSQLiteCache_MissingKey(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), "absent")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get(absent) error = %v, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_ExpiredRowIsMiss(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	// Negative TTL writes an already-expired row, simulating an entry
	// persisted by a previous process run that outlived its TTL.
	_ = c.Set(ctx, "stale", []byte("x"), -time.Minute)

	_, err := c.Get(ctx, "stale")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("expired Get error = %v, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_ZeroTTLNeverExpires(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "pinned", []byte("v"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := c.Get(ctx, "pinned")
	if err != nil {
		t.Fatalf("ttl-0 entry should never read as expired, got %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "key", []byte("value"), time.Minute)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := c.Get(ctx, "key"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after Delete error = %v, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_Clear(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "a", []byte("1"), time.Minute)
	_ = c.Set(ctx, "b", []byte("2"), time.Minute)

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	if _, err := c.Get(ctx, "a"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Error("entries should be gone after Clear")
	}
}

func TestSQLiteCache_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")
	ctx := context.Background()

	first, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	_ = first.Set(ctx, "persisted", []byte("payload"), time.Hour)
	_ = first.Close()

	second, err := NewSQLiteCache(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer second.Close()

	got, err := second.Get(ctx, "persisted")
	if err != nil {
		t.Fatalf("Get after reopen returned error: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("Get after reopen = %q, want %q", got, "payload")
	}
}

func TestSQLiteCache_EmptyKeyRejected(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if _, err := c.Get(ctx, ""); err == nil {
		t.Error("Get with empty key should return an error")
	}
	if err := c.Set(ctx, "", []byte("v"), time.Minute); err == nil {
		t.Error("Set with empty key should return an error")
	}
}
