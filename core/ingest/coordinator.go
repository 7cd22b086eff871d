// ABOUTME: Fetch coordinator fans out to all source adapters concurrently
// ABOUTME: Isolates per-source failures and timeouts behind a bounded worker pool

package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
	"trends-app-api/pkg/metrics"
)

// CoordinatorConfig holds fetch coordination settings.
type CoordinatorConfig struct {
	// FetchTimeout bounds each adapter's fetch individually
	FetchTimeout time.Duration

	// CacheTTL is the default result-cache lifetime for a source's batch
	CacheTTL time.Duration

	// SourceTTL overrides CacheTTL per source identifier
	SourceTTL map[string]time.Duration

	// MaxWorkers caps concurrent fetches; the pool is always sized at
	// least to the number of adapters that missed the cache, so no
	// adapter waits for another in typical configurations
	MaxWorkers int
}

// DefaultCoordinatorConfig returns the default coordination settings.
func DefaultCoordinatorConfig() CoordinatorConfig {
	return CoordinatorConfig{
		FetchTimeout: 60 * time.Second,
		CacheTTL:     3 * time.Minute,
	}
}

// Coordinator runs all registered source adapters through the result cache
// and merges their outputs into one stream. One failing or slow adapter
// never aborts or delays the others; total wall-clock time is bounded by
// the single fetch timeout, not the sum of adapter latencies.
type Coordinator struct {
	deps    interfaces.Dependencies
	results *ResultCache
	cfg     CoordinatorConfig
}

// NewCoordinator creates a coordinator with the given dependencies.
func NewCoordinator(deps interfaces.Dependencies, cfg CoordinatorConfig) *Coordinator {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultCoordinatorConfig().FetchTimeout
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCoordinatorConfig().CacheTTL
	}

	return &Coordinator{
		deps:    deps,
		results: NewResultCache(deps.Cache, deps.Logger),
		cfg:     cfg,
	}
}

// FetchAll fetches candidates from every adapter, consulting the result
// cache first. Cache hits skip the adapter entirely; misses run
// concurrently, and fresh successful batches are written back with the
// source's TTL. The union of all successful outcomes is returned once
// every task has completed or timed out.
func (c *Coordinator) FetchAll(ctx context.Context, adapters []interfaces.SourceAdapter, topics []domain.Topic) []domain.CandidateItem {
	all := make([]domain.CandidateItem, 0)

	var misses []interfaces.SourceAdapter
	for _, adapter := range adapters {
		items, ok := c.results.Get(ctx, adapter.Name(), topics)
		if ok {
			metrics.CacheTotal.WithLabelValues(adapter.Name(), metrics.OutcomeHit).Inc()
			c.logDebug("Result cache hit", adapter.Name(), len(items))
			all = append(all, items...)
			continue
		}
		metrics.CacheTotal.WithLabelValues(adapter.Name(), metrics.OutcomeMiss).Inc()
		misses = append(misses, adapter)
	}

	if len(misses) == 0 {
		return all
	}

	workers := c.cfg.MaxWorkers
	if workers < len(misses) {
		workers = len(misses)
	}
	sem := semaphore.NewWeighted(int64(workers))

	outcomes := make(chan domain.FetchOutcome, len(misses))
	var wg sync.WaitGroup

	for _, adapter := range misses {
		wg.Add(1)
		go func(adapter interfaces.SourceAdapter) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				outcomes <- domain.FetchOutcome{Source: adapter.Name(), Err: err}
				return
			}
			defer sem.Release(1)

			outcomes <- c.fetchOne(ctx, adapter, topics)
		}(adapter)
	}

	// Fan-in: close once every task has settled
	go func() {
		wg.Wait()
		close(outcomes)
	}()

	for outcome := range outcomes {
		if outcome.Err != nil {
			result := metrics.ResultFailure
			if errors.Is(outcome.Err, context.DeadlineExceeded) {
				result = metrics.ResultTimeout
			}
			metrics.FetchTotal.WithLabelValues(outcome.Source, result).Inc()

			if c.deps.Logger != nil {
				c.deps.Logger.Warn("Source fetch failed", map[string]interface{}{
					"source": outcome.Source,
					"error":  outcome.Err.Error(),
				})
			}
			continue
		}

		metrics.FetchTotal.WithLabelValues(outcome.Source, metrics.ResultSuccess).Inc()
		metrics.FetchedItems.WithLabelValues(outcome.Source).Add(float64(len(outcome.Items)))

		c.results.Set(ctx, outcome.Source, topics, outcome.Items, c.ttlFor(outcome.Source))
		all = append(all, outcome.Items...)
	}

	return all
}

// fetchOne runs a single adapter under its individual timeout. The timeout
// is a soft cancellation: the underlying call is not forcibly killed, but
// its result is ignored and the task is marked failed.
func (c *Coordinator) fetchOne(ctx context.Context, adapter interfaces.SourceAdapter, topics []domain.Topic) domain.FetchOutcome {
	fetchCtx, cancel := context.WithTimeout(ctx, c.cfg.FetchTimeout)
	defer cancel()

	type fetchResult struct {
		items []domain.CandidateItem
		err   error
	}

	done := make(chan fetchResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fetchResult{err: fmt.Errorf("adapter panic: %v", r)}
			}
		}()
		items, err := adapter.Fetch(fetchCtx, topics)
		done <- fetchResult{items: items, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return domain.FetchOutcome{Source: adapter.Name(), Err: res.err}
		}
		return domain.FetchOutcome{Source: adapter.Name(), Items: res.items}
	case <-fetchCtx.Done():
		return domain.FetchOutcome{Source: adapter.Name(), Err: fetchCtx.Err()}
	}
}

// ttlFor returns the cache TTL for a source, falling back to the default.
func (c *Coordinator) ttlFor(source string) time.Duration {
	if ttl, ok := c.cfg.SourceTTL[source]; ok {
		return ttl
	}
	return c.cfg.CacheTTL
}

func (c *Coordinator) logDebug(msg, source string, count int) {
	if c.deps.Logger != nil {
		c.deps.Logger.Debug(msg, map[string]interface{}{
			"source": source,
			"items":  count,
		})
	}
}
