// ABOUTME: Hacker News source adapter backed by the Algolia search API
// ABOUTME: Fetches recent stories per topic and maps them to candidate items

package sources

import (
	"context"
	"fmt"
	"net/url"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
	"trends-app-api/pkg/utils/html"
	timeutils "trends-app-api/pkg/utils/time"
)

const (
	hackerNewsSource  = "Hacker News"
	hackerNewsAPIBase = "https://hn.algolia.com/api/v1/search"
	hackerNewsPerPage = 30
)

// HackerNews fetches stories from the Algolia Hacker News search API.
type HackerNews struct {
	deps interfaces.Dependencies
}

// NewHackerNews creates a Hacker News adapter with the given dependencies.
func NewHackerNews(deps interfaces.Dependencies) *HackerNews {
	return &HackerNews{deps: deps}
}

// Name returns the adapter's source name.
func (h *HackerNews) Name() string {
	return hackerNewsSource
}

type algoliaResponse struct {
	Hits []algoliaHit `json:"hits"`
}

type algoliaHit struct {
	ObjectID  string `json:"objectID"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	StoryText string `json:"story_text"`
	CreatedAt string `json:"created_at"`
}

// Fetch queries one search per active topic and merges the results. A
// topic that fails is logged and skipped; the error is only surfaced
// when no topic produced anything.
func (h *HackerNews) Fetch(ctx context.Context, topics []domain.Topic) ([]domain.CandidateItem, error) {
	var items []domain.CandidateItem
	var lastErr error

	for _, topic := range topics {
		if !topic.Active {
			continue
		}
		if err := ctx.Err(); err != nil {
			return items, err
		}

		fetched, err := h.fetchTopic(ctx, topic.Name)
		if err != nil {
			lastErr = err
			warnTopicFailure(h.deps.Logger, hackerNewsSource, topic.Name, err)
			continue
		}
		items = append(items, fetched...)
	}

	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}

func (h *HackerNews) fetchTopic(ctx context.Context, topic string) ([]domain.CandidateItem, error) {
	query := url.Values{}
	query.Set("query", topic)
	query.Set("tags", "story")
	query.Set("hitsPerPage", fmt.Sprintf("%d", hackerNewsPerPage))

	var resp algoliaResponse
	if err := getJSON(ctx, h.deps.HTTPClient, hackerNewsSource, hackerNewsAPIBase+"?"+query.Encode(), &resp); err != nil {
		return nil, err
	}

	items := make([]domain.CandidateItem, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		// Ask HN and similar text posts carry no external URL
		link := hit.URL
		if link == "" && hit.ObjectID != "" {
			link = "https://news.ycombinator.com/item?id=" + hit.ObjectID
		}

		item := domain.CandidateItem{
			Title:       hit.Title,
			Description: html.StripHTML(hit.StoryText),
			URL:         link,
			Source:      hackerNewsSource,
			Category:    "news",
			PublishedAt: timeutils.ParseWithNow(hit.CreatedAt),
			Topic:       topic,
		}
		if !item.IsValid() {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
