package clipboard

import (
	"context"
	"strings"

	"github.com/fwojciec/pagelink"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ pagelink.RepeatChecker = (*Checker)(nil)

// Checker detects a repeat activation by inspecting the clipboard itself:
// if the clipboard already holds a rendering of the candidate page, the
// previous activation must have produced it. Useful as a cross-check when
// the activation cache is unavailable.
type Checker struct {
	Clipboard pagelink.Clipboard
}

// NewChecker creates a Checker over the given clipboard.
func NewChecker(c pagelink.Clipboard) *Checker {
	return &Checker{Clipboard: c}
}

// IsRepeat reports whether the clipboard currently holds either rendering of
// the candidate. Read failures degrade to "not a repeat".
func (c *Checker) IsRepeat(ctx context.Context, candidate *pagelink.PageInfo) bool {
	if candidate == nil {
		return false
	}

	payload, err := c.Clipboard.Read(ctx)
	if err != nil || payload == nil {
		return false
	}

	if payload.HTML != "" {
		if link, ok := parseAnchor(payload.HTML); ok {
			if linkMatches(link, candidate) {
				return true
			}
		}
	}

	if payload.Text != "" {
		text := strings.TrimSpace(payload.Text)
		if text == candidate.PlainText(false) || text == candidate.PlainText(true) {
			return true
		}
	}

	return false
}

// linkMatches reports whether a parsed anchor equals either rendering of the
// candidate.
func linkMatches(link pagelink.Link, candidate *pagelink.PageInfo) bool {
	return link == candidate.RenderLink(false) || link == candidate.RenderLink(true)
}

// parseAnchor extracts the href and visible label of the first hyperlink in
// an HTML fragment.
func parseAnchor(fragment string) (pagelink.Link, bool) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return pagelink.Link{}, false
	}

	anchor := findAnchor(doc)
	if anchor == nil {
		return pagelink.Link{}, false
	}

	var href string
	for _, attr := range anchor.Attr {
		if attr.Key == "href" {
			href = attr.Val
			break
		}
	}
	if href == "" {
		return pagelink.Link{}, false
	}

	return pagelink.Link{Label: strings.TrimSpace(nodeText(anchor)), URL: href}, true
}

func findAnchor(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "a" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findAnchor(c); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
