package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_ExposesCounters(t *testing.T) {
	FetchTotal.WithLabelValues("Hacker News", ResultSuccess).Inc()
	CacheTotal.WithLabelValues("Hacker News", OutcomeMiss).Inc()
	DecidedItems.WithLabelValues("approved").Inc()

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}

	for _, metric := range []string{
		"trends_fetch_total",
		"trends_result_cache_total",
		"trends_decided_items_total",
	} {
		if !strings.Contains(string(body), metric) {
			t.Errorf("scrape output missing %q", metric)
		}
	}
}
