// Package trafilatura provides a generic fallback handler that derives a
// page title from the document's main content metadata. It recognizes any
// web URL, so it must be registered last.
package trafilatura

import (
	"context"
	"strings"

	"github.com/fwojciec/pagelink"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Handler implements pagelink.Handler at compile time.
var _ pagelink.Handler = (*Handler)(nil)

// Handler extracts a coarse page link from arbitrary web pages.
type Handler struct{}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Name identifies the handler in diagnostics.
func (h *Handler) Name() string { return "generic" }

// Recognize accepts any web URL.
func (h *Handler) Recognize(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// Extract derives the page title from content metadata, falling back to the
// document title. Generic pages have no sub-location pair.
func (h *Handler) Extract(ctx context.Context, page *pagelink.Page) (*pagelink.PageInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := page.Title
	if page.HTML != "" {
		opts := trafilatura.Options{
			EnableFallback: true,
		}
		if result, err := trafilatura.Extract(strings.NewReader(page.HTML), opts); err == nil {
			if t := strings.TrimSpace(result.Metadata.Title); t != "" {
				title = t
			}
		}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, pagelink.Errorf(pagelink.EEXTRACT, "page has no usable title")
	}

	return &pagelink.PageInfo{
		PrimaryLabel: title,
		PrimaryURL:   page.URL,
		Mode:         pagelink.ModeDefault,
	}, nil
}
