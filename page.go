package pagelink

import "context"

// Page is an immutable snapshot of the page the user is currently viewing.
// Handlers read only this snapshot; they never touch the live browser.
type Page struct {
	// URL is the current navigable address.
	URL string

	// Title is the document title.
	Title string

	// HTML is the rendered DOM serialized as HTML.
	HTML string
}

// PageSource produces snapshots of the active browser page.
// Implementations hide how the browser is reached (DevTools socket,
// user-mode launch) and which tab counts as active.
type PageSource interface {
	// Snapshot captures the active page's address, title and rendered HTML.
	// The context controls timeout and cancellation.
	Snapshot(ctx context.Context) (*Page, error)

	// Close releases browser resources.
	// Must be called when the PageSource is no longer needed.
	Close() error
}
