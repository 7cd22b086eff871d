package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"trends-app-api/core/interfaces"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
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

func TestMemoryCache_MissingKey(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_, err := c.Get(context.Background(), "absent")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get(absent) error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_ExpiredKeyIsMiss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	_ = c.Set(ctx, "ephemeral", []byte("x"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "ephemeral")
	if !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("expired Get error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	// The default expiration is deliberately tiny: a ttl of 0 must store
	// indefinitely, not fall back to it.
	c := NewMemoryCache(10*time.Millisecond, time.Minute)
	ctx := context.Background()

	_ = c.Set(ctx, "pinned", []byte("v"), 0)
	time.Sleep(30 * time.Millisecond)

	got, err := c.Get(ctx, "pinned")
	if err != nil {
		t.Fatalf("Get after default expiration window error = %v", err)
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	_ = c.Set(ctx, "key", []byte("value"), time.Minute)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := c.Get(ctx, "key"); !errors.Is(err, interfaces.ErrCacheMiss) {
		t.Errorf("Get after Delete error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	ctx := context.Background()

	_ = c.Set(ctx, "key", []byte("abc"), time.Minute)

	first, _ := c.Get(ctx, "key")
	first[0] = 'z'

	second, _ := c.Get(ctx, "key")
	if string(second) != "abc" {
		t.Errorf("cached value was mutated through a returned slice: %q", second)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Get(ctx, "key"); err == nil {
		t.Error("Get with cancelled context should return an error")
	}
	if err := c.Set(ctx, "key", []byte("v"), time.Minute); err == nil {
		t.Error("Set with cancelled context should return an error")
	}
}
