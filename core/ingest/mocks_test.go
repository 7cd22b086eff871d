package ingest

import (
	"context"
	"sync"
	"time"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
)

// mockCache is an in-memory Cache implementation honoring TTLs, so tests
// can exercise expiry without a real backend.
type mockCache struct {
	mu      sync.Mutex
	entries map[string]mockEntry
	getErr  error
	setErr  error
}

type mockEntry struct {
	value  []byte
	expiry time.Time
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]mockEntry)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}

	entry, ok := m.entries[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	if !entry.expiry.IsZero() && time.Now().After(entry.expiry) {
		delete(m.entries, key)
		return nil, interfaces.ErrCacheMiss
	}
	return entry.value, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.setErr != nil {
		return m.setErr
	}

	entry := mockEntry{value: value}
	if ttl > 0 {
		entry.expiry = time.Now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// mockAdapter is a SourceAdapter whose behavior is supplied per test.
type mockAdapter struct {
	name      string
	fetchFunc func(ctx context.Context, topics []domain.Topic) ([]domain.CandidateItem, error)

	mu    sync.Mutex
	calls int
}

func (m *mockAdapter) Name() string {
	return m.name
}

func (m *mockAdapter) Fetch(ctx context.Context, topics []domain.Topic) ([]domain.CandidateItem, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, topics)
	}
	return nil, nil
}

func (m *mockAdapter) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockKnownStore is a KnownItemStore backed by plain sets.
type mockKnownStore struct {
	urls         map[string]bool
	fingerprints map[string]bool
	urlErr       error
	fpErr        error
}

func newMockKnownStore() *mockKnownStore {
	return &mockKnownStore{
		urls:         make(map[string]bool),
		fingerprints: make(map[string]bool),
	}
}

func (m *mockKnownStore) HasURL(ctx context.Context, normalizedURL string) (bool, error) {
	if m.urlErr != nil {
		return false, m.urlErr
	}
	return m.urls[normalizedURL], nil
}

func (m *mockKnownStore) HasFingerprint(ctx context.Context, fp string) (bool, error) {
	if m.fpErr != nil {
		return false, m.fpErr
	}
	return m.fingerprints[fp], nil
}

// mockLogger is a no-op Logger that records warnings for assertions.
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}

func (m *mockLogger) warnCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warns)
}
