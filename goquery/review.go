package goquery

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/pagelink"
)

// Ensure ReviewHandler implements pagelink.Handler at compile time.
var _ pagelink.Handler = (*ReviewHandler)(nil)

// reviewPathRe requires a numeric change id in a fixed position of the path
// (Gerrit-style "/c/<project>/+/<id>", optionally followed by a patchset or
// file path).
var reviewPathRe = regexp.MustCompile(`^/c/([^/]+)/\+/(\d+)`)

// ReviewHandler extracts link data from code-review pages. The canonical
// link is the change itself, with any patchset or file suffix dropped.
type ReviewHandler struct {
	hosts []string
}

// NewReviewHandler creates a ReviewHandler for the given review hosts.
func NewReviewHandler(hosts ...string) *ReviewHandler {
	return &ReviewHandler{hosts: hosts}
}

// Name returns the handler's identifier.
func (h *ReviewHandler) Name() string {
	return "review"
}

// Recognize reports whether the address is a change page on a review host.
func (h *ReviewHandler) Recognize(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return hostMatches(u.Host, h.hosts) && reviewPathRe.MatchString(u.Path)
}

// Extract scrapes the change subject and builds the canonical change link.
func (h *ReviewHandler) Extract(ctx context.Context, page *pagelink.Page) (*pagelink.PageInfo, error) {
	u, err := url.Parse(page.URL)
	if err != nil {
		return nil, pagelink.Errorf(pagelink.EEXTRACT, "unparseable review address: %v", err)
	}
	m := reviewPathRe.FindStringSubmatch(u.Path)
	if m == nil {
		return nil, pagelink.Errorf(pagelink.EEXTRACT, "no change id in address %q", page.URL)
	}
	project, changeID := m[1], m[2]

	label := "Change " + changeID
	if subject := h.subject(page); subject != "" {
		label += ": " + subject
	}

	canonical := *u
	canonical.Path = "/c/" + project + "/+/" + changeID
	canonical.RawQuery = ""
	canonical.Fragment = ""

	return &pagelink.PageInfo{
		PrimaryLabel: label,
		PrimaryURL:   canonical.String(),
		Mode:         pagelink.ModeDefault,
	}, nil
}

// subject resolves the change subject from the page, falling back to the
// document title with the product suffix dropped.
func (h *ReviewHandler) subject(page *pagelink.Page) string {
	if doc, err := parseDoc(page); err == nil {
		if s := strings.TrimSpace(doc.Find(".change-subject, h1.subject").First().Text()); s != "" {
			return s
		}
	}
	title := page.Title
	if i := strings.Index(title, " · "); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}
