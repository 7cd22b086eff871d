// Package core contains the business logic for the trend ingestion
// pipeline. It is designed to be framework-agnostic and can be used
// independently of any daemon or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Topic, CandidateItem, DecidedItem)
// - ingest: Fetch coordination, result caching and the decision pipeline
// - relevance: Deterministic relevance scoring and classification
// - sources: Adapters for the external trend sources
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "trends-app-api/core/ingest"
//	    "trends-app-api/core/interfaces"
//	    "trends-app-api/core/relevance"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create the pipeline
//	coordinator := ingest.NewCoordinator(deps, ingest.DefaultCoordinatorConfig())
//	pipeline := ingest.NewPipeline(deps, coordinator, relevance.NewScorer())
//
//	// Run one ingestion pass
//	decided := pipeline.Ingest(ctx, topics, adapters, knownStore)
package core
