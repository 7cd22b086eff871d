// ABOUTME: Storage interfaces for the persistence layer owned by the caller
// ABOUTME: Defines the existing-item lookups consulted during deduplication

package interfaces

import "context"

// KnownItemStore exposes the caller's persistent record of previously seen
// items. The pipeline consults it synchronously during the single-threaded
// merge step; a lookup error is treated as "not known" so that a degraded
// store never blocks ingestion.
type KnownItemStore interface {
	// HasURL reports whether an item with this canonical URL is already stored
	HasURL(ctx context.Context, normalizedURL string) (bool, error)

	// HasFingerprint reports whether an item with this content fingerprint
	// is already stored
	HasFingerprint(ctx context.Context, fingerprint string) (bool, error)
}
