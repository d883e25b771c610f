// Package htmlutil reduces HTML fragments found in clue and metadata text
// to plain strings.
package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags parses s as an HTML fragment and returns its text content with
// tags removed. Script and style bodies are dropped, <br> becomes a space,
// and runs of whitespace collapse to a single space. Input without markup
// comes back trimmed but otherwise unchanged; on a parse failure the input
// is returned as is.
func StripTags(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var sb strings.Builder
	collectText(doc, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		case "br":
			sb.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
