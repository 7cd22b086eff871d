// ABOUTME: Lobsters source adapter scraping the per-tag story listing
// ABOUTME: Parses the HTML with goquery since Lobsters exposes no search API

package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"trends-app-api/core/domain"
	coreerrors "trends-app-api/core/errors"
	"trends-app-api/core/interfaces"
	timeutils "trends-app-api/pkg/utils/time"
)

const (
	lobstersSource  = "Lobsters"
	lobstersBaseURL = "https://lobste.rs"
)

// Lobsters scrapes story listings from lobste.rs tag pages.
type Lobsters struct {
	deps interfaces.Dependencies
}

// NewLobsters creates a Lobsters adapter with the given dependencies.
func NewLobsters(deps interfaces.Dependencies) *Lobsters {
	return &Lobsters{deps: deps}
}

// Name returns the adapter's source name.
func (l *Lobsters) Name() string {
	return lobstersSource
}

// Fetch scrapes the tag page for each active topic. Topics whose names
// reduce to an empty tag are skipped.
func (l *Lobsters) Fetch(ctx context.Context, topics []domain.Topic) ([]domain.CandidateItem, error) {
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

		fetched, err := l.fetchTag(ctx, topic.Name, tag)
		if err != nil {
			lastErr = err
			warnTopicFailure(l.deps.Logger, lobstersSource, topic.Name, err)
			continue
		}
		items = append(items, fetched...)
	}

	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}

func (l *Lobsters) fetchTag(ctx context.Context, topic, tag string) ([]domain.CandidateItem, error) {
	resp, err := l.deps.HTTPClient.Get(ctx, lobstersBaseURL+"/t/"+tag)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			Source:     lobstersSource,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	var items []domain.CandidateItem
	doc.Find("li.story").Each(func(_ int, story *goquery.Selection) {
		link := story.Find("a.u-url").First()
		href, _ := link.Attr("href")

		// text submissions link relative to the site root
		if strings.HasPrefix(href, "/") {
			href = lobstersBaseURL + href
		}

		var publishedAt time.Time
		if datetime, ok := story.Find(".byline time").Attr("datetime"); ok {
			publishedAt = timeutils.ParseWithNow(datetime)
		}

		item := domain.CandidateItem{
			Title:       strings.TrimSpace(link.Text()),
			URL:         href,
			Source:      lobstersSource,
			Category:    "news",
			PublishedAt: publishedAt,
			Topic:       topic,
		}
		if !item.IsValid() {
			return
		}
		items = append(items, item)
	})

	return items, nil
}
