// ABOUTME: Prometheus metrics for the ingestion pipeline
// ABOUTME: Tracks per-source fetch outcomes and result-cache effectiveness

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// FetchTotal counts source fetch attempts by source and result
	// (success, failure, timeout).
	FetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trends_fetch_total",
		Help: "Source fetch attempts by source and result",
	}, []string{"source", "result"})

	// FetchedItems counts candidate items returned by successful fetches.
	FetchedItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trends_fetched_items_total",
		Help: "Candidate items returned by successful source fetches",
	}, []string{"source"})

	// CacheTotal counts result-cache lookups by source and outcome
	// (hit, miss).
	CacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trends_result_cache_total",
		Help: "Result cache lookups by source and outcome",
	}, []string{"source", "outcome"})

	// DecidedItems counts pipeline outputs by status (approved, rejected).
	DecidedItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trends_decided_items_total",
		Help: "Pipeline output items by approval status",
	}, []string{"status"})

	// DiscardedItems counts items dropped during deduplication by reason
	// (url_duplicate, fingerprint_duplicate).
	DiscardedItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trends_discarded_items_total",
		Help: "Items discarded during deduplication by reason",
	}, []string{"reason"})
)

// Result label values for FetchTotal.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultTimeout = "timeout"
)

// Outcome label values for CacheTotal.
const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

// Reason label values for DiscardedItems.
const (
	ReasonURLDuplicate         = "url_duplicate"
	ReasonFingerprintDuplicate = "fingerprint_duplicate"
)

// Handler returns an HTTP handler exposing all registered metrics in the
// prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
