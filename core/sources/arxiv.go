// ABOUTME: ArXiv source adapter backed by the export API's Atom feed
// ABOUTME: Maps well-known topics to arXiv categories and parses entries via gofeed

package sources

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
	"trends-app-api/pkg/utils/html"
)

const (
	arXivSource     = "ArXiv"
	arXivAPIBase    = "http://export.arxiv.org/api/query"
	arXivMaxResults = 25
)

// arXivCategories maps common topic names to their arXiv category, which
// yields far better results than a full-text search for those topics.
var arXivCategories = map[string]string{
	"machine learning":            "cs.LG",
	"artificial intelligence":     "cs.AI",
	"ai":                          "cs.AI",
	"natural language processing": "cs.CL",
	"nlp":                         "cs.CL",
	"computer vision":             "cs.CV",
	"robotics":                    "cs.RO",
	"cryptography":                "cs.CR",
	"security":                    "cs.CR",
	"distributed systems":         "cs.DC",
	"databases":                   "cs.DB",
	"programming languages":       "cs.PL",
}

// ArXiv fetches recent papers from the arXiv export API.
type ArXiv struct {
	deps   interfaces.Dependencies
	parser *gofeed.Parser
}

// NewArXiv creates an arXiv adapter with the given dependencies.
func NewArXiv(deps interfaces.Dependencies) *ArXiv {
	return &ArXiv{
		deps:   deps,
		parser: gofeed.NewParser(),
	}
}

// Name returns the adapter's source name.
func (a *ArXiv) Name() string {
	return arXivSource
}

// Fetch queries recent submissions per active topic, preferring a
// category query where the topic maps to one.
func (a *ArXiv) Fetch(ctx context.Context, topics []domain.Topic) ([]domain.CandidateItem, error) {
	var items []domain.CandidateItem
	var lastErr error

	for _, topic := range topics {
		if !topic.Active {
			continue
		}
		if err := ctx.Err(); err != nil {
			return items, err
		}

		fetched, err := a.fetchTopic(ctx, topic.Name)
		if err != nil {
			lastErr = err
			warnTopicFailure(a.deps.Logger, arXivSource, topic.Name, err)
			continue
		}
		items = append(items, fetched...)
	}

	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}

func (a *ArXiv) fetchTopic(ctx context.Context, topic string) ([]domain.CandidateItem, error) {
	search := fmt.Sprintf("all:%q", topic)
	if category, ok := arXivCategories[strings.ToLower(topic)]; ok {
		search = "cat:" + category
	}

	query := url.Values{}
	query.Set("search_query", search)
	query.Set("sortBy", "submittedDate")
	query.Set("sortOrder", "descending")
	query.Set("max_results", fmt.Sprintf("%d", arXivMaxResults))

	body, err := getBody(ctx, a.deps.HTTPClient, arXivSource, arXivAPIBase+"?"+query.Encode())
	if err != nil {
		return nil, err
	}

	feed, err := a.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	items := make([]domain.CandidateItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		var publishedAt time.Time
		if entry.PublishedParsed != nil {
			publishedAt = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			publishedAt = *entry.UpdatedParsed
		}

		item := domain.CandidateItem{
			Title:       collapseWhitespace(entry.Title),
			Description: collapseWhitespace(html.StripHTML(entry.Description)),
			URL:         entry.Link,
			Source:      arXivSource,
			Category:    "paper",
			PublishedAt: publishedAt,
			Topic:       topic,
		}
		if !item.IsValid() {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// collapseWhitespace folds the hard-wrapped text arXiv entries carry
// into single-space-separated prose.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
