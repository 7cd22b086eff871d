// ABOUTME: Shared plumbing for source adapters fetching from external APIs
// ABOUTME: Small HTTP/JSON helpers and per-topic failure logging

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	coreerrors "trends-app-api/core/errors"
	"trends-app-api/core/interfaces"
)

// getBody performs a GET and returns the raw response body. Non-200
// statuses become ExternalAPIErrors; the body is always drained and
// closed.
func getBody(ctx context.Context, client interfaces.HTTPClient, source, url string) ([]byte, error) {
	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		io.Copy(io.Discard, resp.Body())
		return nil, &coreerrors.ExternalAPIError{
			Source:     source,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}

// getJSON performs a GET and decodes the JSON payload into out.
func getJSON(ctx context.Context, client interfaces.HTTPClient, source, url string, out interface{}) error {
	body, err := getBody(ctx, client, source, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// tagify converts a topic name into the slug form tag-based APIs expect:
// lowercase with everything but letters and digits removed.
func tagify(topic string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(topic) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// warnTopicFailure logs a per-topic fetch failure without aborting the
// remaining topics.
func warnTopicFailure(logger interfaces.Logger, source, topic string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("Topic fetch failed", map[string]interface{}{
		"source": source,
		"topic":  topic,
		"error":  err.Error(),
	})
}
