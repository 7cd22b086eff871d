// ABOUTME: Result cache maps (source, topic set) to a previously fetched batch
// ABOUTME: Wraps an injected cache backend with key derivation and JSON payloads

package ingest

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
)

const cacheKeyPrefix = "trends"

// ResultCache stores fetched candidate batches keyed by source identifier
// and topic set, so repeated coordinator runs inside the TTL window skip
// the external call. The backend decides durability: the in-memory backend
// is per-process, while the SQLite and Redis backends survive restarts.
// A payload that fails to deserialize is treated as a miss and removed,
// never as a fatal error.
type ResultCache struct {
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewResultCache wraps the given backend. A nil backend disables caching:
// every Get is a miss and Set is a no-op.
func NewResultCache(cache interfaces.Cache, logger interfaces.Logger) *ResultCache {
	return &ResultCache{
		cache:  cache,
		logger: logger,
	}
}

// Key derives the deterministic cache key for a source and topic set.
// Topic names are lowercased and sorted first, so topic order and casing
// never produce distinct keys.
func (r *ResultCache) Key(source string, topics []domain.Topic) string {
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, strings.ToLower(t.Name))
	}
	sort.Strings(names)

	digest := md5.Sum([]byte(source + ":" + strings.Join(names, ",")))
	return cacheKeyPrefix + ":" + hex.EncodeToString(digest[:])
}

// Get returns the cached batch for (source, topics), or false on a miss.
func (r *ResultCache) Get(ctx context.Context, source string, topics []domain.Topic) ([]domain.CandidateItem, bool) {
	if r.cache == nil {
		return nil, false
	}

	key := r.Key(source, topics)
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) && r.logger != nil {
			r.logger.Warn("Result cache read failed", map[string]interface{}{
				"source": source,
				"error":  err.Error(),
			})
		}
		return nil, false
	}

	var items []domain.CandidateItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt payload degrades to a miss
		if r.logger != nil {
			r.logger.Warn("Discarding corrupt result cache entry", map[string]interface{}{
				"source": source,
				"error":  err.Error(),
			})
		}
		_ = r.cache.Delete(ctx, key)
		return nil, false
	}

	return items, true
}

// Set stores a freshly fetched batch with the given TTL. Storage errors
// are logged and swallowed: a broken cache must not fail a fetch.
func (r *ResultCache) Set(ctx context.Context, source string, topics []domain.Topic, items []domain.CandidateItem, ttl time.Duration) {
	if r.cache == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		if r.logger != nil {
			r.logger.Error("Failed to serialize result cache payload", map[string]interface{}{
				"source": source,
				"error":  err.Error(),
			})
		}
		return
	}

	if err := r.cache.Set(ctx, r.Key(source, topics), data, ttl); err != nil && r.logger != nil {
		r.logger.Warn("Result cache write failed", map[string]interface{}{
			"source": source,
			"error":  err.Error(),
		})
	}
}

// Clear removes the cached batch for (source, topics).
func (r *ResultCache) Clear(ctx context.Context, source string, topics []domain.Topic) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Delete(ctx, r.Key(source, topics))
}
