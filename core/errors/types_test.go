package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		Source:     "Hacker News",
		StatusCode: 503,
		Message:    "service unavailable",
	}

	expected := "external API error from Hacker News: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "cache.type",
		Message: "unknown backend",
	}

	expected := "validation error on field 'cache.type': unknown backend"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsExternalAPI_True(t *testing.T) {
	err := &ExternalAPIError{
		Source:     "GitHub",
		StatusCode: 500,
		Message:    "internal server error",
	}

	if !IsExternalAPI(err) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
}

func TestIsExternalAPI_False(t *testing.T) {
	err := errors.New("some other error")

	if IsExternalAPI(err) {
		t.Error("IsExternalAPI should return false for non-ExternalAPIError")
	}
}

func TestIsExternalAPI_WrappedError(t *testing.T) {
	apiErr := &ExternalAPIError{
		Source:     "ArXiv",
		StatusCode: 429,
		Message:    "rate limited",
	}
	wrapped := fmt.Errorf("fetching topic: %w", apiErr)

	if !IsExternalAPI(wrapped) {
		t.Error("IsExternalAPI should return true for wrapped ExternalAPIError")
	}
}

func TestIsValidation_True(t *testing.T) {
	err := &ValidationError{
		Field:   "fetch.timeout",
		Message: "must be at least 1 second",
	}

	if !IsValidation(err) {
		t.Error("IsValidation should return true for ValidationError")
	}
}

func TestIsValidation_False(t *testing.T) {
	err := errors.New("some other error")

	if IsValidation(err) {
		t.Error("IsValidation should return false for non-ValidationError")
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &ExternalAPIError{Source: "Dev.to", StatusCode: 502, Message: "bad gateway"}
	wrappedErr := WrapError(originalErr, "fetch failed")

	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	expectedMsg := "fetch failed: external API error from Dev.to: 502 - bad gateway"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	if !IsExternalAPI(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as ExternalAPIError")
	}
}

func TestWrapError_AddsContextMessage(t *testing.T) {
	originalErr := errors.New("network timeout")
	wrappedErr := WrapError(originalErr, "external API call failed")

	expected := "external API call failed: network timeout"
	if wrappedErr.Error() != expected {
		t.Errorf("WrapError = %v, want %v", wrappedErr.Error(), expected)
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	wrappedErr := WrapError(nil, "this should not happen")

	if wrappedErr != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
