package sources

import (
	"context"
	"strings"
	"testing"

	"trends-app-api/core/domain"
)

const devToFixture = `[
	{
		"title": "Understanding WebAssembly Memory",
		"description": "A walkthrough of linear memory and how modules share it",
		"url": "https://dev.to/alice/understanding-webassembly-memory-4k2n",
		"published_at": "2024-07-22T12:00:00Z"
	},
	{
		"title": "",
		"description": "draft without a title",
		"url": "https://dev.to/bob/draft",
		"published_at": "2024-07-22T13:00:00Z"
	}
]`

func TestDevToFetch(t *testing.T) {
	client := &mockHTTPClient{getFunc: respondWith(200, devToFixture)}
	deps, _ := testDeps(client)
	adapter := NewDevTo(deps)

	items, err := adapter.Fetch(context.Background(), []domain.Topic{activeTopic("WebAssembly")})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 item (titleless entry dropped), got %d", len(items))
	}
	item := items[0]
	if item.Source != "Dev.to" {
		t.Errorf("Source = %q", item.Source)
	}
	if item.Category != "article" {
		t.Errorf("Category = %q", item.Category)
	}
	if item.Topic != "WebAssembly" {
		t.Errorf("Topic should keep the original name, got %q", item.Topic)
	}
}

func TestDevToFetch_TagSlug(t *testing.T) {
	client := &mockHTTPClient{getFunc: respondWith(200, "[]")}
	deps, _ := testDeps(client)
	adapter := NewDevTo(deps)

	if _, err := adapter.Fetch(context.Background(), []domain.Topic{activeTopic("Machine Learning")}); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(client.calls) != 1 {
		t.Fatalf("expected 1 request, got %d", len(client.calls))
	}
	if !strings.Contains(client.calls[0], "tag=machinelearning") {
		t.Errorf("topic name should be slugified for the tag: %q", client.calls[0])
	}
}

func TestDevToFetch_EmptyTagSkipped(t *testing.T) {
	client := &mockHTTPClient{getFunc: respondWith(200, "[]")}
	deps, _ := testDeps(client)
	adapter := NewDevTo(deps)

	items, err := adapter.Fetch(context.Background(), []domain.Topic{activeTopic("!!!")})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if len(client.calls) != 0 {
		t.Errorf("expected no requests for an unsluggable topic, got %v", client.calls)
	}
}

func TestTagify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Machine Learning", "machinelearning"},
		{"WebAssembly", "webassembly"},
		{"C++", "c"},
		{"llm-agents", "llmagents"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := tagify(tt.input); got != tt.expected {
			t.Errorf("tagify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
