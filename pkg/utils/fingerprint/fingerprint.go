// ABOUTME: Content fingerprinting for cross-source duplicate detection
// ABOUTME: Hashes the meaningful terms of a title so reworded headlines collide

package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"
)

// stopwords are common English words that carry no identity. "new", "old",
// "latest" and "recent" are included because headlines reuse them freely.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "that": {}, "the": {}, "to": {},
	"was": {}, "will": {}, "with": {}, "this": {}, "but": {}, "they": {},
	"have": {}, "had": {}, "what": {}, "when": {}, "where": {}, "who": {},
	"why": {}, "how": {}, "all": {}, "each": {}, "every": {}, "both": {},
	"few": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"than": {}, "too": {}, "very": {}, "can": {}, "just": {}, "should": {},
	"now": {}, "i": {}, "you": {}, "your": {}, "we": {}, "our": {},
	"new": {}, "old": {}, "latest": {}, "recent": {},
}

var (
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	versionPattern    = regexp.MustCompile(`(\d+)\.(\d+)`)
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

const (
	maxDescriptionChars = 100
	maxKeyTerms         = 6
	fallbackChars       = 50
	digestLength        = 16
)

// Generate produces a 16-character hex fingerprint of an item's content.
// Similar content yields the same fingerprint even when wording, word order
// or punctuation differ slightly. This is a lossy heuristic, not a
// cryptographic identity: rare collisions between distinct items are an
// accepted trade-off against flooding the feed with near-duplicates.
func Generate(title, description string) string {
	text := strings.ToLower(title)
	if description != "" {
		desc := strings.ToLower(description)
		if len(desc) > maxDescriptionChars {
			desc = desc[:maxDescriptionChars]
		}
		text += " " + desc
	}

	text = urlPattern.ReplaceAllString(text, "")
	// "3.13" becomes "313" so a version mention stays a single token
	text = versionPattern.ReplaceAllString(text, "${1}${2}")
	text = nonAlnumPattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))

	terms := KeyTerms(text, maxKeyTerms)

	var input string
	if len(terms) == 0 {
		input = text
		if len(input) > fallbackChars {
			input = input[:fallbackChars]
		}
	} else {
		input = strings.Join(terms, " ")
	}

	digest := md5.Sum([]byte(input))
	return hex.EncodeToString(digest[:])[:digestLength]
}

// KeyTerms extracts up to max meaningful terms from already-cleaned text:
// stopwords and tokens of length <= 2 are dropped, the first max survivors
// are kept in original order, then sorted so word order does not matter.
func KeyTerms(cleaned string, max int) []string {
	var terms []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		terms = append(terms, word)
		if len(terms) == max {
			break
		}
	}
	sort.Strings(terms)
	return terms
}
