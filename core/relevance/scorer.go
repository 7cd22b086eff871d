// ABOUTME: Relevance scorer rates how strongly a candidate item matches a topic
// ABOUTME: Weighted heuristic over title, description, source credibility and recency

package relevance

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"trends-app-api/core/domain"
)

// ApprovalThreshold is the minimum score for an item to be approved.
// A score of exactly 0.3 is approved.
const ApprovalThreshold = 0.3

// Scorer computes relevance scores using curated source-credibility and
// negative-keyword tables. The zero value is not usable; construct with
// NewScorer.
type Scorer struct {
	sourceWeights    map[string]float64
	negativeKeywords map[string][]string
	now              func() time.Time
}

// NewScorer returns a scorer with the default curated tables.
func NewScorer() *Scorer {
	return &Scorer{
		sourceWeights:    defaultSourceWeights(),
		negativeKeywords: defaultNegativeKeywords(),
		now:              time.Now,
	}
}

// Score computes how relevant an item is to a topic, from 0.0 (irrelevant)
// to 1.0 (very relevant). Breakdown:
//
//   - topic match in title: whole word 0.4, substring 0.2
//   - topic match in description: whole word 0.3, substring 0.15
//   - source credibility: curated weight (default 0.5) scaled by 0.2
//   - recency: tiered bonus scaled by 0.1, omitted when the publication
//     time is unknown
//   - negative keywords: running score halved once if any blocklisted term
//     for the topic appears in title or description
//
// If the topic name occurs nowhere in the item the score is 0.
func (s *Scorer) Score(item domain.CandidateItem, topic domain.Topic) float64 {
	topicLower := strings.ToLower(topic.Name)
	titleLower := strings.ToLower(item.Title)
	descLower := strings.ToLower(item.Description)

	titleWhole := containsWholeWord(titleLower, topicLower)
	titleSub := strings.Contains(titleLower, topicLower)
	descWhole := containsWholeWord(descLower, topicLower)
	descSub := strings.Contains(descLower, topicLower)

	if !titleSub && !descSub {
		return 0
	}

	score := 0.0

	switch {
	case titleWhole:
		score += 0.4
	case titleSub:
		score += 0.2
	}

	switch {
	case descWhole:
		score += 0.3
	case descSub:
		score += 0.15
	}

	weight, ok := s.sourceWeights[item.Source]
	if !ok {
		weight = defaultSourceWeight
	}
	score += weight * 0.2

	if !item.PublishedAt.IsZero() {
		score += s.recencyScore(item.PublishedAt) * 0.1
	}

	for _, keyword := range s.negativeKeywords[topicLower] {
		if strings.Contains(titleLower, keyword) || strings.Contains(descLower, keyword) {
			score *= 0.5
			break
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Classify maps a score to the approval status using ApprovalThreshold.
func (s *Scorer) Classify(score float64) domain.Status {
	if score >= ApprovalThreshold {
		return domain.StatusApproved
	}
	return domain.StatusRejected
}

// recencyScore rates how fresh the content is.
func (s *Scorer) recencyScore(publishedAt time.Time) float64 {
	daysOld := s.now().Sub(publishedAt).Hours() / 24

	switch {
	case daysOld < 1:
		return 1.0
	case daysOld < 7:
		return 0.8
	case daysOld < 30:
		return 0.5
	case daysOld < 90:
		return 0.2
	default:
		return 0.0
	}
}

// wholeWordPatterns caches compiled word-boundary patterns per needle.
// The needle set is the configured topics, so the cache stays small.
var wholeWordPatterns sync.Map

// containsWholeWord reports whether needle occurs in text on word
// boundaries ("python" matches "learn python" but not "pythonic").
func containsWholeWord(text, needle string) bool {
	if needle == "" {
		return false
	}

	if cached, ok := wholeWordPatterns.Load(needle); ok {
		return cached.(*regexp.Regexp).MatchString(text)
	}

	pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(needle) + `\b`)
	wholeWordPatterns.Store(needle, pattern)
	return pattern.MatchString(text)
}
