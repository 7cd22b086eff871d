// ABOUTME: Dev.to source adapter backed by the public articles API
// ABOUTME: Pulls recent articles for the tag slug derived from each topic

package sources

import (
	"context"
	"fmt"
	"net/url"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
	timeutils "trends-app-api/pkg/utils/time"
)

const (
	devToSource  = "Dev.to"
	devToAPIBase = "https://dev.to/api/articles"
	devToPerPage = 30
)

// DevTo fetches articles from the Dev.to public API.
type DevTo struct {
	deps interfaces.Dependencies
}

// NewDevTo creates a Dev.to adapter with the given dependencies.
func NewDevTo(deps interfaces.Dependencies) *DevTo {
	return &DevTo{deps: deps}
}

// Name returns the adapter's source name.
func (d *DevTo) Name() string {
	return devToSource
}

type devToArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// Fetch pulls the latest articles for each active topic's tag. Topics
// whose names reduce to an empty tag are skipped up front.
func (d *DevTo) Fetch(ctx context.Context, topics []domain.Topic) ([]domain.CandidateItem, error) {
	var items []domain.CandidateItem
	var lastErr error

	for _, topic := range topics {
		if !topic.Active {
			continue
		}
		tag := tagify(topic.Name)
		if tag == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return items, err
		}

		fetched, err := d.fetchTag(ctx, topic.Name, tag)
		if err != nil {
			lastErr = err
			warnTopicFailure(d.deps.Logger, devToSource, topic.Name, err)
			continue
		}
		items = append(items, fetched...)
	}

	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}

func (d *DevTo) fetchTag(ctx context.Context, topic, tag string) ([]domain.CandidateItem, error) {
	query := url.Values{}
	query.Set("tag", tag)
	query.Set("per_page", fmt.Sprintf("%d", devToPerPage))

	var articles []devToArticle
	if err := getJSON(ctx, d.deps.HTTPClient, devToSource, devToAPIBase+"?"+query.Encode(), &articles); err != nil {
		return nil, err
	}

	items := make([]domain.CandidateItem, 0, len(articles))
	for _, article := range articles {
		item := domain.CandidateItem{
			Title:       article.Title,
			Description: article.Description,
			URL:         article.URL,
			Source:      devToSource,
			Category:    "article",
			PublishedAt: timeutils.ParseWithNow(article.PublishedAt),
			Topic:       topic,
		}
		if !item.IsValid() {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
