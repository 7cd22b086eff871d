// ABOUTME: Ingestion pipeline turns raw fetched candidates into decided items
// ABOUTME: Canonicalizes, deduplicates against store and batch, scores, classifies

package ingest

import (
	"context"
	"time"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
	"trends-app-api/core/relevance"
	"trends-app-api/pkg/metrics"
	"trends-app-api/pkg/utils/fingerprint"
	"trends-app-api/pkg/utils/urlnorm"
)

// Pipeline is the top-level ingestion entry point. It runs the fetch
// coordinator, then deduplicates and scores every raw candidate. The
// pipeline persists nothing itself: the returned batch is handed to the
// caller, who owns storage and supplied the known-item lookups.
type Pipeline struct {
	deps        interfaces.Dependencies
	coordinator *Coordinator
	scorer      *relevance.Scorer
	now         func() time.Time
}

// NewPipeline creates a pipeline around a coordinator and scorer.
func NewPipeline(deps interfaces.Dependencies, coordinator *Coordinator, scorer *relevance.Scorer) *Pipeline {
	return &Pipeline{
		deps:        deps,
		coordinator: coordinator,
		scorer:      scorer,
		now:         time.Now,
	}
}

// Ingest fetches from all adapters and decides every candidate. Per item,
// in the coordinator's output order:
//
//  1. canonicalize the URL; drop the item if the store knows it or the
//     canonical URL was already accepted in this batch
//  2. fingerprint the content; drop the item if the store knows it or the
//     fingerprint was already accepted in this batch
//  3. resolve the item's topic reference within the topic snapshot; score
//     and classify when it resolves, otherwise mark the score absent and
//     the status rejected
//
// Rejected items are still returned so the caller can audit them. Zero
// adapters is not an error: the result is simply empty.
//
// The merge loop is single-threaded and runs only after every fetch task
// has settled, so the batch-local dedup sets need no locking.
func (p *Pipeline) Ingest(ctx context.Context, topics []domain.Topic, adapters []interfaces.SourceAdapter, known interfaces.KnownItemStore) []domain.DecidedItem {
	candidates := p.coordinator.FetchAll(ctx, adapters, topics)

	decided := make([]domain.DecidedItem, 0, len(candidates))
	seenURLs := make(map[string]struct{}, len(candidates))
	seenFingerprints := make(map[string]struct{}, len(candidates))

	for _, candidate := range candidates {
		normalized := urlnorm.Normalize(candidate.URL)

		if _, dup := seenURLs[normalized]; dup || p.knownURL(ctx, known, normalized) {
			metrics.DiscardedItems.WithLabelValues(metrics.ReasonURLDuplicate).Inc()
			continue
		}

		fp := fingerprint.Generate(candidate.Title, candidate.Description)

		if _, dup := seenFingerprints[fp]; dup || p.knownFingerprint(ctx, known, fp) {
			metrics.DiscardedItems.WithLabelValues(metrics.ReasonFingerprintDuplicate).Inc()
			continue
		}

		item := domain.DecidedItem{
			CandidateItem:      candidate,
			URLNormalized:      normalized,
			ContentFingerprint: fp,
			Status:             domain.StatusRejected,
			FetchedAt:          p.now(),
		}

		if topic, ok := domain.ResolveTopic(topics, candidate.Topic); ok {
			score := p.scorer.Score(candidate, topic)
			item.RelevanceScore = &score
			item.Status = p.scorer.Classify(score)
		}

		seenURLs[normalized] = struct{}{}
		seenFingerprints[fp] = struct{}{}

		metrics.DecidedItems.WithLabelValues(string(item.Status)).Inc()
		decided = append(decided, item)
	}

	if p.deps.Logger != nil {
		p.deps.Logger.Info("Ingestion batch complete", map[string]interface{}{
			"fetched": len(candidates),
			"decided": len(decided),
		})
	}

	return decided
}

// knownURL consults the caller's store; lookup errors degrade to "not
// known" so a broken store never blocks ingestion.
func (p *Pipeline) knownURL(ctx context.Context, known interfaces.KnownItemStore, normalizedURL string) bool {
	if known == nil {
		return false
	}
	seen, err := known.HasURL(ctx, normalizedURL)
	if err != nil {
		p.warnLookup("url", err)
		return false
	}
	return seen
}

func (p *Pipeline) knownFingerprint(ctx context.Context, known interfaces.KnownItemStore, fp string) bool {
	if known == nil {
		return false
	}
	seen, err := known.HasFingerprint(ctx, fp)
	if err != nil {
		p.warnLookup("fingerprint", err)
		return false
	}
	return seen
}

func (p *Pipeline) warnLookup(kind string, err error) {
	if p.deps.Logger != nil {
		p.deps.Logger.Warn("Known-item lookup failed", map[string]interface{}{
			"kind":  kind,
			"error": err.Error(),
		})
	}
}
