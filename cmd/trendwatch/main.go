// ABOUTME: Main entry point for the trend ingestion daemon
// ABOUTME: Wires together all components and runs the periodic fetch loop

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trends-app-api/core/domain"
	"trends-app-api/core/ingest"
	"trends-app-api/core/interfaces"
	"trends-app-api/core/relevance"
	"trends-app-api/core/sources"
	"trends-app-api/infrastructure/cache/memory"
	"trends-app-api/infrastructure/cache/redis"
	"trends-app-api/infrastructure/cache/sqlite"
	stdhttp "trends-app-api/infrastructure/http/standard"
	logruslogger "trends-app-api/infrastructure/logger/logrus"
	storage "trends-app-api/infrastructure/storage/memory"
	"trends-app-api/pkg/config"
	"trends-app-api/pkg/featureflags"
	"trends-app-api/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.New(cfg.LogLevel)
	logger.Info("Starting trend ingestion daemon", map[string]interface{}{
		"cache_type":     cfg.Cache.Type,
		"fetch_interval": cfg.Daemon.IntervalSeconds,
		"topics":         len(cfg.Daemon.Topics),
	})

	// Create cache
	cache := buildCache(cfg, logger)

	// Create HTTP client
	var httpOpts []stdhttp.Option
	if cfg.HTTP.RateLimit > 0 {
		httpOpts = append(httpOpts, stdhttp.WithRateLimit(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst))
	}
	httpClient := stdhttp.NewClient(time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second, httpOpts...)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create scorer, optionally overriding the curated tables
	scorer := relevance.NewScorer()
	if cfg.ScoringConfigPath != "" {
		scorer, err = relevance.NewScorerFromFile(cfg.ScoringConfigPath)
		if err != nil {
			log.Fatalf("Failed to load scoring config: %v", err)
		}
		logger.Info("Loaded scoring table overrides", map[string]interface{}{
			"path": cfg.ScoringConfigPath,
		})
	}

	// Create fetch coordinator and pipeline
	coordCfg := ingest.DefaultCoordinatorConfig()
	coordCfg.FetchTimeout = cfg.FetchTimeout()
	coordCfg.CacheTTL = cfg.CacheTTL()
	coordCfg.SourceTTL = cfg.SourceTTLs()
	coordCfg.MaxWorkers = cfg.Fetch.MaxWorkers

	coordinator := ingest.NewCoordinator(deps, coordCfg)
	pipeline := ingest.NewPipeline(deps, coordinator, scorer)

	adapters := buildAdapters(deps, featureflags.NewEnvManager(""), logger)

	topics := make([]domain.Topic, 0, len(cfg.Daemon.Topics))
	for _, name := range cfg.Daemon.Topics {
		topics = append(topics, domain.Topic{Name: name, Active: true})
	}
	if len(topics) == 0 {
		logger.Warn("No topics configured, nothing will be fetched", nil)
	}

	known := storage.NewKnownItems()

	// Expose prometheus metrics when a listen address is configured
	if cfg.Metrics.Address != "" {
		go func() {
			logger.Info("Metrics endpoint starting", map[string]interface{}{
				"address": cfg.Metrics.Address,
			})
			if err := http.ListenAndServe(cfg.Metrics.Address, metrics.Handler()); err != nil {
				logger.Error("Metrics endpoint failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}()
	}

	// Run until interrupted
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(cfg.Daemon.IntervalSeconds) * time.Second)
	defer ticker.Stop()

	runOnce(ctx, pipeline, topics, adapters, known, logger)

	for {
		select {
		case <-ticker.C:
			runOnce(ctx, pipeline, topics, adapters, known, logger)
		case <-quit:
			logger.Info("Shutting down", nil)
			cancel()
			return
		}
	}
}

// runOnce executes a single ingestion pass and remembers the decided
// batch so later passes skip the same items.
func runOnce(ctx context.Context, pipeline *ingest.Pipeline, topics []domain.Topic, adapters []interfaces.SourceAdapter, known *storage.KnownItems, logger interfaces.Logger) {
	decided := pipeline.Ingest(ctx, topics, adapters, known)
	known.Remember(decided)

	approved := 0
	for _, item := range decided {
		if item.Status == domain.StatusApproved {
			approved++
		}
	}

	logger.Info("Ingestion pass complete", map[string]interface{}{
		"decided":  len(decided),
		"approved": approved,
		"known":    known.Len(),
	})
}

// buildAdapters constructs every source adapter whose feature flag is
// enabled, so a misbehaving source can be disabled via the environment.
func buildAdapters(deps interfaces.Dependencies, flags featureflags.Manager, logger interfaces.Logger) []interfaces.SourceAdapter {
	candidates := []struct {
		flag    featureflags.FeatureFlag
		adapter interfaces.SourceAdapter
	}{
		{featureflags.SourceHackerNews, sources.NewHackerNews(deps)},
		{featureflags.SourceGitHub, sources.NewGitHub(deps)},
		{featureflags.SourceDevTo, sources.NewDevTo(deps)},
		{featureflags.SourceArXiv, sources.NewArXiv(deps)},
		{featureflags.SourceLobsters, sources.NewLobsters(deps)},
	}

	adapters := make([]interfaces.SourceAdapter, 0, len(candidates))
	for _, c := range candidates {
		if !flags.IsEnabled(c.flag) {
			logger.Info("Source disabled by feature flag", map[string]interface{}{
				"source": c.adapter.Name(),
			})
			continue
		}
		adapters = append(adapters, c.adapter)
	}
	return adapters
}

// buildCache constructs the configured cache backend, falling back to
// the in-memory cache when a backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(
		time.Duration(cfg.Cache.Memory.DefaultExpiration)*time.Second,
		time.Duration(cfg.Cache.Memory.CleanupInterval)*time.Second,
	)
}
