// ABOUTME: URL normalization for duplicate detection
// ABOUTME: Produces a stable canonical key for comparing links across sources

package urlnorm

import (
	"net/url"
	"strings"
)

// trackingParams are query parameter names stripped during normalization.
// Matched case-insensitively; any "utm_" prefixed name is also stripped.
var trackingParams = map[string]struct{}{
	"ref":           {},
	"source":        {},
	"campaign":      {},
	"fbclid":        {},
	"gclid":         {},
	"mc_cid":        {},
	"mc_eid":        {},
	"si":            {},
	"igsh":          {},
	"yclid":         {},
	"_hsenc":        {},
	"_hsmi":         {},
	"hsctatracking": {},
}

// Normalize turns a URL into a stable comparison key:
//
//  1. strips tracking query parameters (utm_*, ref, fbclid, ...)
//  2. forces the scheme to https
//  3. lowercases the host and strips a leading "www."
//  4. drops default ports 80/443
//  5. strips a single trailing "/" from the path, unless the path is "/"
//  6. re-encodes remaining query parameters sorted by key
//
// It never fails: on any parse problem the input is returned unchanged.
// Better to keep a duplicate than to lose an item.
// Normalize is idempotent.
func Normalize(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}

	query := u.Query()
	for name := range query {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, "utm_") {
			delete(query, name)
			continue
		}
		if _, tracking := trackingParams[lower]; tracking {
			delete(query, name)
		}
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if port := u.Port(); port != "" && port != "80" && port != "443" {
		host += ":" + port
	}

	path := u.Path
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	normalized := url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     path,
		RawQuery: query.Encode(), // Encode sorts by key
	}

	return normalized.String()
}
