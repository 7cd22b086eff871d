package fingerprint

import (
	"regexp"
	"testing"
)

func TestGenerate_StableAcrossFillerWords(t *testing.T) {
	a := Generate("Python 3.13 Released", "")
	b := Generate("Python 3.13 is Released!", "")

	if a != b {
		t.Errorf("fingerprints differ for equivalent titles: %q vs %q", a, b)
	}
}

func TestGenerate_OrderInsensitive(t *testing.T) {
	a := Generate("New Features in Python 3.13", "")
	b := Generate("Python 3.13 New Features", "")

	if a != b {
		t.Errorf("fingerprints differ for reordered titles: %q vs %q", a, b)
	}
}

func TestGenerate_DiscriminatesUnrelatedContent(t *testing.T) {
	a := Generate("Python 3.13 Released", "")
	b := Generate("JavaScript ES2024 Features", "")

	if a == b {
		t.Error("unrelated titles produced the same fingerprint")
	}
}

func TestGenerate_FixedLengthHex(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]{16}$`)

	titles := []string{
		"Python 3.13 Released",
		"a",
		"",
		"The the the and and",
	}

	for _, title := range titles {
		fp := Generate(title, "")
		if !hexPattern.MatchString(fp) {
			t.Errorf("Generate(%q) = %q, want 16 lowercase hex chars", title, fp)
		}
	}
}

func TestGenerate_IgnoresEmbeddedURLs(t *testing.T) {
	a := Generate("Rust async runtime benchmarks", "")
	b := Generate("Rust async runtime benchmarks https://example.com/post", "")

	if a != b {
		t.Errorf("embedded URL changed fingerprint: %q vs %q", a, b)
	}
}

func TestGenerate_DescriptionContributes(t *testing.T) {
	a := Generate("Weekly digest", "kubernetes operators deep dive")
	b := Generate("Weekly digest", "postgres replication internals")

	if a == b {
		t.Error("different descriptions should produce different fingerprints")
	}
}

func TestGenerate_VersionNumbersCollapse(t *testing.T) {
	a := Generate("Python 3.13 Released", "")
	b := Generate("Python 313 Released", "")

	if a != b {
		t.Errorf("version collapse failed: %q vs %q", a, b)
	}
}

func TestGenerate_StopwordOnlyFallback(t *testing.T) {
	// Every token is a stopword or too short; the cleaned-text fallback
	// must still produce a stable fingerprint.
	a := Generate("the and of", "")
	b := Generate("the and of", "")

	if a != b {
		t.Errorf("fallback fingerprint unstable: %q vs %q", a, b)
	}
}

func TestKeyTerms(t *testing.T) {
	terms := KeyTerms("python 313 released today with many brand improvements", 3)

	if len(terms) != 3 {
		t.Fatalf("KeyTerms returned %d terms, want 3", len(terms))
	}
	// first 3 survivors (python, 313, released) sorted alphabetically
	want := []string{"313", "python", "released"}
	for i, term := range want {
		if terms[i] != term {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], term)
		}
	}
}
