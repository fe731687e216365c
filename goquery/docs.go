package goquery

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelink"
)

// Ensure DocsHandler implements pagelink.Handler at compile time.
var _ pagelink.Handler = (*DocsHandler)(nil)

// docsTitleSuffix is the fixed suffix the editor appends to document titles.
const docsTitleSuffix = " - Google Docs"

// docsPlaceholderTitle is used when the document title cannot be determined.
const docsPlaceholderTitle = "Untitled document"

// docsLevelRe strips the trailing "level N" qualifier that the outline's
// accessibility labels carry.
var docsLevelRe = regexp.MustCompile(`\s+level \d+$`)

// docsPathRe requires a document id segment in the path.
var docsPathRe = regexp.MustCompile(`^/document(?:/u/\d+)?/d/[^/]+`)

// DocsHandler extracts link data from document-editor pages. The coarse link
// is the document without its fragment; the detail link is the currently
// highlighted outline heading, resolved tooltip-first.
type DocsHandler struct {
	hosts []string
}

// NewDocsHandler creates a DocsHandler. With no hosts it recognizes
// docs.google.com.
func NewDocsHandler(hosts ...string) *DocsHandler {
	if len(hosts) == 0 {
		hosts = []string{"docs.google.com"}
	}
	return &DocsHandler{hosts: hosts}
}

// Name returns the handler's identifier.
func (h *DocsHandler) Name() string {
	return "docs"
}

// Recognize reports whether the address is a document-editor page.
func (h *DocsHandler) Recognize(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return hostMatches(u.Host, h.hosts) && strings.HasPrefix(u.Path, "/document/")
}

// Extract scrapes the document title and the highlighted outline heading.
func (h *DocsHandler) Extract(ctx context.Context, page *pagelink.Page) (*pagelink.PageInfo, error) {
	u, err := url.Parse(page.URL)
	if err != nil {
		return nil, pagelink.Errorf(pagelink.EEXTRACT, "unparseable document address: %v", err)
	}
	if !docsPathRe.MatchString(u.Path) {
		// Matched the address family but there is no document here
		// (home screen, settings); a link would be meaningless.
		return nil, pagelink.Errorf(pagelink.EEXTRACT, "no document id in address %q", page.URL)
	}

	title := strings.TrimSuffix(page.Title, docsTitleSuffix)
	title = strings.TrimSpace(title)
	if title == "" {
		title = docsPlaceholderTitle
	}

	info := &pagelink.PageInfo{
		PrimaryLabel: title,
		PrimaryURL:   stripFragment(page.URL),
		Mode:         pagelink.ModeDefault,
	}

	// The heading anchor lives in the fragment; without it the detailed
	// link cannot be addressed, so degrade to the coarse link only.
	if u.Fragment == "" {
		return info, nil
	}

	if heading := h.highlightedHeading(page); heading != "" {
		info.SecondaryLabel = heading
		info.SecondaryURL = page.URL
	}

	return info, nil
}

// highlightedHeading resolves the label of the currently highlighted outline
// entry: tooltip attribute first, then element text, then accessibility
// label with its trailing "level N" qualifier stripped. First match wins.
func (h *DocsHandler) highlightedHeading(page *pagelink.Page) string {
	doc, err := parseDoc(page)
	if err != nil {
		return ""
	}

	sel := doc.Find(".navigation-item.location-indicator-highlight").First()
	if sel.Length() == 0 {
		return ""
	}

	if tooltip, ok := sel.Attr("data-tooltip"); ok && strings.TrimSpace(tooltip) != "" {
		return strings.TrimSpace(tooltip)
	}

	if text := strings.TrimSpace(sel.Text()); text != "" {
		return text
	}

	if label, ok := firstAttr(sel, "aria-label"); ok {
		return strings.TrimSpace(docsLevelRe.ReplaceAllString(label, ""))
	}

	return ""
}

// firstAttr returns the attribute from the selection or its first child
// that carries it.
func firstAttr(sel *goquery.Selection, name string) (string, bool) {
	if v, ok := sel.Attr(name); ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	var found string
	sel.Find("[" + name + "]").EachWithBreak(func(_ int, child *goquery.Selection) bool {
		if v, ok := child.Attr(name); ok && strings.TrimSpace(v) != "" {
			found = v
			return false
		}
		return true
	})
	return found, found != ""
}
