package goquery

import (
	"context"
	"strings"

	"github.com/fwojciec/pagelink"
)

// Ensure RecordsHandler implements pagelink.Handler at compile time.
var _ pagelink.Handler = (*RecordsHandler)(nil)

// recordsPlaceholderTitle is used when the record title cannot be determined.
const recordsPlaceholderTitle = "Record"

// RecordsHandler extracts link data from record-manager pages. Recognition is
// allowlisted against fixed base+page URL prefixes rather than a general
// pattern: arbitrary pages in the product are not link-worthy.
type RecordsHandler struct {
	prefixes []string
}

// NewRecordsHandler creates a RecordsHandler allowlisted to the given
// address prefixes.
func NewRecordsHandler(prefixes ...string) *RecordsHandler {
	return &RecordsHandler{prefixes: prefixes}
}

// Name returns the handler's identifier.
func (h *RecordsHandler) Name() string {
	return "records"
}

// Recognize reports whether the address starts with an allowlisted prefix.
func (h *RecordsHandler) Recognize(rawURL string) bool {
	for _, prefix := range h.prefixes {
		if strings.HasPrefix(rawURL, prefix) {
			return true
		}
	}
	return false
}

// Extract scrapes the record heading, preferring the page's main heading
// over the document title.
func (h *RecordsHandler) Extract(ctx context.Context, page *pagelink.Page) (*pagelink.PageInfo, error) {
	label := ""
	if doc, err := parseDoc(page); err == nil {
		label = strings.TrimSpace(doc.Find("main h1, h1").First().Text())
	}
	if label == "" {
		label = strings.TrimSpace(page.Title)
	}
	if label == "" {
		label = recordsPlaceholderTitle
	}

	return &pagelink.PageInfo{
		PrimaryLabel: label,
		PrimaryURL:   stripFragment(page.URL),
		Mode:         pagelink.ModeDefault,
	}, nil
}
