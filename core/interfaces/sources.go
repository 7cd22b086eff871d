// ABOUTME: Source adapter contract consumed by the fetch coordinator
// ABOUTME: Each adapter converts one external content source into candidate items

package interfaces

import (
	"context"

	"trends-app-api/core/domain"
)

// SourceAdapter fetches raw candidate items for a set of topics from one
// external content source. Implementations must be safe to invoke
// concurrently with other adapters' instances and should honor context
// cancellation on their network calls.
type SourceAdapter interface {
	// Name returns the stable source identifier (e.g. "GitHub"). It is used
	// for cache keys, credibility lookup, and logging.
	Name() string

	// Fetch returns candidate items for the given topics. An empty slice is
	// a valid successful result.
	Fetch(ctx context.Context, topics []domain.Topic) ([]domain.CandidateItem, error)
}
