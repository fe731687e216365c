package goquery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/pagelink"
)

// Ensure WikiHandler implements pagelink.Handler at compile time.
var _ pagelink.Handler = (*WikiHandler)(nil)

// wikiPlaceholderTitle is used when the page title cannot be determined.
const wikiPlaceholderTitle = "Untitled page"

// wikiTitleSegments is how many trailing " - " segments the wiki appends to
// the document title (space name and product name).
const wikiTitleSegments = 2

// WikiHandler extracts link data from wiki pages. Wiki titles carry
// "<page> - <space> - <product>" where the page title may itself contain
// " - ", so the appended segments are stripped counting from the end.
type WikiHandler struct {
	hosts []string
}

// NewWikiHandler creates a WikiHandler. With no hosts it recognizes any
// *.atlassian.net wiki.
func NewWikiHandler(hosts ...string) *WikiHandler {
	if len(hosts) == 0 {
		hosts = []string{"atlassian.net"}
	}
	return &WikiHandler{hosts: hosts}
}

// Name returns the handler's identifier.
func (h *WikiHandler) Name() string {
	return "wiki"
}

// Recognize reports whether the address is a wiki page.
func (h *WikiHandler) Recognize(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return hostMatches(u.Host, h.hosts) && strings.HasPrefix(u.Path, "/wiki/")
}

// Extract scrapes the page title and, when the address carries a heading
// fragment, the heading it points at.
func (h *WikiHandler) Extract(ctx context.Context, page *pagelink.Page) (*pagelink.PageInfo, error) {
	title := stripTrailingSegments(page.Title, wikiTitleSegments)
	if title == "" {
		title = wikiPlaceholderTitle
	}

	info := &pagelink.PageInfo{
		PrimaryLabel: title,
		PrimaryURL:   stripFragment(page.URL),
		Mode:         pagelink.ModeDefault,
	}

	u, err := url.Parse(page.URL)
	if err != nil || u.Fragment == "" {
		return info, nil
	}

	if heading := h.headingByID(page, u.Fragment); heading != "" {
		info.SecondaryLabel = heading
		info.SecondaryURL = page.URL
	}

	return info, nil
}

// headingByID returns the text of the element the fragment points at.
func (h *WikiHandler) headingByID(page *pagelink.Page, id string) string {
	doc, err := parseDoc(page)
	if err != nil {
		return ""
	}
	sel := doc.Find(fmt.Sprintf("[id=%q]", id)).First()
	return strings.TrimSpace(sel.Text())
}

// stripTrailingSegments removes the last n " - " separated segments,
// counting from the end because space names vary in length and the page
// title itself may contain the separator.
func stripTrailingSegments(title string, n int) string {
	parts := strings.Split(title, " - ")
	if len(parts) <= n {
		return strings.TrimSpace(title)
	}
	return strings.TrimSpace(strings.Join(parts[:len(parts)-n], " - "))
}
