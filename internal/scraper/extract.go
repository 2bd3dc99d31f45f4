package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// TextByID returns the flattened text of the element with the given id:
// every descendant text node trimmed, empties dropped, the rest joined by
// single spaces. Missing element yields "".
func TextByID(doc *goquery.Document, id string) string {
	return strings.Join(strippedStrings(doc.Find("#"+id)), " ")
}

// MultilineByID is TextByID with newline joins, preserving the line
// structure of block fields like the requirements list.
func MultilineByID(doc *goquery.Document, id string) string {
	return strings.Join(strippedStrings(doc.Find("#"+id)), "\n")
}

// LinkByID locates the element with the given id, takes its first anchor
// descendant, and returns that anchor's href normalized to an absolute URL.
// Returns nil if the element is missing, has no anchor, or the first anchor
// carries no href — a later anchor with an href does not rescue it.
func LinkByID(doc *goquery.Document, id, base string) *string {
	container := doc.Find("#" + id)
	if container.Length() == 0 {
		return nil
	}
	link := container.Find("a").First()
	if href, ok := link.Attr("href"); ok && href != "" {
		abs := AbsoluteHref(href, base)
		return &abs
	}
	return nil
}

// AbsoluteHref normalizes an href scraped from the site onto base. The site
// emits backslash-separated relative paths from its file-download handlers;
// already-absolute URLs pass through unchanged, so the function is
// idempotent.
func AbsoluteHref(href, base string) string {
	normalized := strings.ReplaceAll(href, `\`, "/")
	if strings.HasPrefix(normalized, "http") {
		return normalized
	}
	normalized = strings.TrimPrefix(normalized, "../")
	normalized = strings.TrimLeft(normalized, "./")
	return strings.TrimRight(base, "/") + "/" + normalized
}

// strippedStrings walks the selection's text nodes in document order,
// returning each one trimmed, with whitespace-only nodes dropped.
func strippedStrings(sel *goquery.Selection) []string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return parts
}
