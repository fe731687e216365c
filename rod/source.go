// Package rod provides a PageSource backed by Chrome browser automation.
// It attaches to the user's already-running browser over the DevTools
// socket; the page is never navigated or mutated, only snapshotted.
package rod

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pagelink"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// Ensure Source implements pagelink.PageSource at compile time.
var _ pagelink.PageSource = (*Source)(nil)

// Source snapshots the active page of a Chrome browser.
// Source is safe for concurrent use by multiple goroutines.
type Source struct {
	browser *rod.Browser

	// ownsBrowser is true only when this process launched the browser;
	// attaching to the user's own browser must never close it.
	ownsBrowser bool
	lnchr       *launcher.Launcher
}

// NewSource attaches to an already-running browser via its remote debugging
// address (e.g. "http://127.0.0.1:9222" or a ws:// control URL).
func NewSource(controlURL string) (*Source, error) {
	u, err := launcher.ResolveURL(controlURL)
	if err != nil {
		return nil, fmt.Errorf("resolving browser URL %q: %w", controlURL, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Source{browser: browser}, nil
}

// NewUserSource launches (or reuses) the user's own browser profile with
// remote debugging enabled. Close must be called when the Source is no
// longer needed.
func NewUserSource() (*Source, error) {
	lnchr := launcher.NewUserMode().Headless(false).Leakless(true)
	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Source{browser: browser, ownsBrowser: true, lnchr: lnchr}, nil
}

// Snapshot captures the active page's address, title and rendered HTML.
func (s *Source) Snapshot(ctx context.Context) (*pagelink.Page, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser := s.browser.Context(ctx)
	pages, err := browser.Pages()
	if err != nil {
		return nil, err
	}

	page := activePage(pages)
	if page == nil {
		return nil, pagelink.Errorf(pagelink.ENOTFOUND, "no active browser page")
	}

	info, err := page.Info()
	if err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	return &pagelink.Page{URL: info.URL, Title: info.Title, HTML: html}, nil
}

// Close releases browser resources. Attached browsers are left running.
func (s *Source) Close() error {
	if !s.ownsBrowser {
		return nil
	}
	err := s.browser.Close()
	if s.lnchr != nil {
		s.lnchr.Kill()
	}
	return err
}

// activePage returns the focused, visible web page, falling back to the
// first web page when focus cannot be determined (e.g. the terminal holds
// focus while the user triggers an activation).
func activePage(pages rod.Pages) *rod.Page {
	var fallback *rod.Page
	for _, p := range pages {
		info, err := p.Info()
		if err != nil || !isWebURL(info.URL) {
			continue
		}
		if fallback == nil {
			fallback = p
		}
		res, err := p.Eval(`() => document.visibilityState === "visible" && document.hasFocus()`)
		if err == nil && res.Value.Bool() {
			return p
		}
	}
	return fallback
}

func isWebURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
