// ABOUTME: In-memory known-item store for deduplication across pipeline runs
// ABOUTME: Callers owning real persistence replace this with their own lookups

package memory

import (
	"context"
	"sync"

	"trends-app-api/core/domain"
)

// KnownItems remembers the identity keys of every item a process has
// already decided, so repeated pipeline runs within one process lifetime
// don't re-emit the same content. It is not durable; a database-backed
// store should implement the same interface for real deployments.
type KnownItems struct {
	mu           sync.RWMutex
	urls         map[string]struct{}
	fingerprints map[string]struct{}
}

// NewKnownItems creates an empty store.
func NewKnownItems() *KnownItems {
	return &KnownItems{
		urls:         make(map[string]struct{}),
		fingerprints: make(map[string]struct{}),
	}
}

// HasURL reports whether the canonical URL was remembered.
func (s *KnownItems) HasURL(ctx context.Context, normalizedURL string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.urls[normalizedURL]
	return ok, nil
}

// HasFingerprint reports whether the content fingerprint was remembered.
func (s *KnownItems) HasFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.fingerprints[fingerprint]
	return ok, nil
}

// Remember records the identity keys from a decided batch.
func (s *KnownItems) Remember(items []domain.DecidedItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.urls[item.URLNormalized] = struct{}{}
		s.fingerprints[item.ContentFingerprint] = struct{}{}
	}
}

// Len returns the number of remembered URLs, for status reporting.
func (s *KnownItems) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.urls)
}
