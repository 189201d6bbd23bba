package extract

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoInfobox indicates the fetched page carries no summary panel.
var ErrNoInfobox = errors.New("page has no infobox")

// InfoboxText renders the first infobox found in a page's HTML as plain
// text. Rows, list items and <br> breaks become newlines and header/data
// cells are space-separated, so field labels and values stay adjacent
// the way they read on the page. Returns ErrNoInfobox when no element
// carries the infobox class.
func InfoboxText(pageHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("parse page html: %w", err)
	}

	box := findFirst(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "infobox")
	})
	if box == nil {
		return "", ErrNoInfobox
	}

	var b strings.Builder
	renderText(&b, box)
	return b.String(), nil
}

// renderText flattens a node subtree into text, inserting separators at
// the block boundaries that matter inside an infobox table.
func renderText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return
		case "br":
			b.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(b, c)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "tr", "li", "p", "div", "caption", "table":
			b.WriteString("\n")
		case "th", "td":
			b.WriteString(" ")
		}
	}
}

// hasClass checks if a node has a specific CSS class
func hasClass(n *html.Node, className string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			for _, class := range strings.Fields(attr.Val) {
				if class == className {
					return true
				}
			}
		}
	}
	return false
}

// findFirst finds the first node matching a predicate in document order
func findFirst(n *html.Node, predicate func(*html.Node) bool) *html.Node {
	var result *html.Node

	var walk func(*html.Node) bool
	walk = func(node *html.Node) bool {
		if predicate(node) {
			result = node
			return true
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}

	walk(n)
	return result
}
