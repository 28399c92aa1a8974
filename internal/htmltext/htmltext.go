// Package htmltext extracts plain text from HTML pages so web documents
// can be ingested into a training corpus.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// skipElements are elements whose text content is not prose.
var skipElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"head":     {},
}

// Extract parses HTML and returns its visible text, with element
// boundaries collapsed to single spaces.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, skip := skipElements[n.Data]; skip {
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return buf.String(), nil
}

// ExtractString is Extract over a string.
func ExtractString(s string) (string, error) {
	return Extract(strings.NewReader(s))
}
