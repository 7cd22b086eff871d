// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Reduces source-supplied HTML descriptions to plain text

package html

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// StripHTML removes tags from an HTML fragment and returns the text
// content with entities decoded and whitespace collapsed. Script and style
// bodies are skipped. Unparseable input is returned trimmed, never
// rejected: descriptions are best-effort data.
func StripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := xhtml.Parse(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var sb strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " ")
}
