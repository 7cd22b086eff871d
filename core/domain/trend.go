// ABOUTME: Trend domain models for the ingestion pipeline
// ABOUTME: CandidateItem is a raw fetch result, DecidedItem the deduplicated scored output

package domain

import "time"

// Status is the pipeline's final classification of an item.
type Status string

const (
	// StatusApproved marks an item whose relevance score met the threshold
	StatusApproved Status = "approved"

	// StatusRejected marks an item that scored below the threshold or
	// carried no resolvable topic
	StatusRejected Status = "rejected"
)

// CandidateItem is the raw output of a source adapter. It has no identity
// until the pipeline canonicalizes and fingerprints it.
type CandidateItem struct {
	// Title is the item's headline
	Title string

	// Description contains the item's summary, may be empty
	Description string

	// URL is the link to the content as reported by the source
	URL string

	// Source is the human-readable source name (e.g. "GitHub")
	Source string

	// Category groups the source (e.g. "developer", "scientific")
	Category string

	// PublishedAt is the publication time; the zero value means unknown
	PublishedAt time.Time

	// Topic is the name of the topic this item was fetched for, may be empty
	Topic string
}

// IsValid checks if the candidate has the fields the pipeline requires
func (c *CandidateItem) IsValid() bool {
	if c.Title == "" {
		return false
	}

	if c.URL == "" {
		return false
	}

	return true
}

// DecidedItem is a candidate that passed deduplication, with its identity
// keys and classification attached. Immutable once produced; ownership
// passes to the caller for storage.
type DecidedItem struct {
	CandidateItem

	// URLNormalized is the canonical comparison key derived from URL
	URLNormalized string

	// ContentFingerprint is the wording-tolerant identity hash
	ContentFingerprint string

	// RelevanceScore is the topic match score in [0,1]; nil when the item
	// carried no resolvable topic
	RelevanceScore *float64

	// Status is the approval classification
	Status Status

	// FetchedAt is when the pipeline processed the item
	FetchedAt time.Time
}

// FetchOutcome is the per-source result of one coordinator run: either a
// list of items or an error. It exists only for the duration of a single
// coordinator invocation.
type FetchOutcome struct {
	// Source is the adapter identifier the outcome belongs to
	Source string

	// Items holds the fetched candidates on success
	Items []CandidateItem

	// Err is non-nil when the fetch failed or timed out
	Err error
}
