// ABOUTME: GitHub source adapter backed by the repository search API
// ABOUTME: Surfaces recently pushed repositories matching each topic

package sources

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"trends-app-api/core/domain"
	"trends-app-api/core/interfaces"
	timeutils "trends-app-api/pkg/utils/time"
)

const (
	gitHubSource  = "GitHub"
	gitHubAPIBase = "https://api.github.com/search/repositories"
	gitHubPerPage = 30
)

// GitHub fetches repositories from the GitHub search API.
type GitHub struct {
	deps interfaces.Dependencies
}

// NewGitHub creates a GitHub adapter with the given dependencies.
func NewGitHub(deps interfaces.Dependencies) *GitHub {
	return &GitHub{deps: deps}
}

// Name returns the adapter's source name.
func (g *GitHub) Name() string {
	return gitHubSource
}

type gitHubSearchResponse struct {
	Items []gitHubRepo `json:"items"`
}

type gitHubRepo struct {
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	PushedAt    string `json:"pushed_at"`
	CreatedAt   string `json:"created_at"`
}

// Fetch searches repositories per active topic, sorted by stars. Topics
// that fail are logged and skipped.
func (g *GitHub) Fetch(ctx context.Context, topics []domain.Topic) ([]domain.CandidateItem, error) {
	var items []domain.CandidateItem
	var lastErr error

	for _, topic := range topics {
		if !topic.Active {
			continue
		}
		if err := ctx.Err(); err != nil {
			return items, err
		}

		fetched, err := g.fetchTopic(ctx, topic.Name)
		if err != nil {
			lastErr = err
			warnTopicFailure(g.deps.Logger, gitHubSource, topic.Name, err)
			continue
		}
		items = append(items, fetched...)
	}

	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}

func (g *GitHub) fetchTopic(ctx context.Context, topic string) ([]domain.CandidateItem, error) {
	query := url.Values{}
	query.Set("q", topic)
	query.Set("sort", "stars")
	query.Set("order", "desc")
	query.Set("per_page", fmt.Sprintf("%d", gitHubPerPage))

	var resp gitHubSearchResponse
	if err := getJSON(ctx, g.deps.HTTPClient, gitHubSource, gitHubAPIBase+"?"+query.Encode(), &resp); err != nil {
		return nil, err
	}

	items := make([]domain.CandidateItem, 0, len(resp.Items))
	for _, repo := range resp.Items {
		// pushed_at tracks activity better than created_at for trending
		published := repo.PushedAt
		if published == "" {
			published = repo.CreatedAt
		}

		var publishedAt time.Time
		if published != "" {
			publishedAt = timeutils.ParseWithNow(published)
		}

		item := domain.CandidateItem{
			Title:       repo.FullName,
			Description: repo.Description,
			URL:         repo.HTMLURL,
			Source:      gitHubSource,
			Category:    "code",
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
