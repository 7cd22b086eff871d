// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the ingestion pipeline

package interfaces

// Dependencies holds all external dependencies required by the core
// business logic. There are no package-level singletons; everything is
// constructed once and passed in, so multiple pipelines can coexist and
// tests can substitute any piece.
type Dependencies struct {
	// Cache provides the backend for the fetch result cache
	Cache Cache

	// HTTPClient provides HTTP request functionality for source adapters
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
