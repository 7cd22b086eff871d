// ABOUTME: Test doubles for the source adapter tests
// ABOUTME: Function-field HTTP client mock plus a canned response type

package sources

import (
	"context"
	"errors"
	"io"
	"strings"

	"trends-app-api/core/interfaces"
)

// mockHTTPClient implements interfaces.HTTPClient with a configurable
// function field and records every requested URL.
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls = append(m.calls, url)
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("no getFunc configured")
}

// stubResponse is a canned interfaces.Response.
type stubResponse struct {
	status int
	body   string
}

func (s *stubResponse) StatusCode() int {
	return s.status
}

func (s *stubResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(s.body))
}

func (s *stubResponse) Header(string) string {
	return ""
}

// respondWith returns a getFunc that always serves the given response.
func respondWith(status int, body string) func(context.Context, string) (interfaces.Response, error) {
	return func(context.Context, string) (interfaces.Response, error) {
		return &stubResponse{status: status, body: body}, nil
	}
}

// mockLogger implements interfaces.Logger and counts warnings.
type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}

func testDeps(client interfaces.HTTPClient) (interfaces.Dependencies, *mockLogger) {
	logger := &mockLogger{}
	return interfaces.Dependencies{
		HTTPClient: client,
		Logger:     logger,
	}, logger
}
