// Package goquery provides site handlers that scrape link data from page
// snapshots using CSS selectors. Each handler covers one site family; its
// Recognize predicate inspects only the address, and its Extract reads only
// the snapshot's title and HTML.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelink"
)

// parseDoc parses the snapshot's HTML into a queryable document.
func parseDoc(page *pagelink.Page) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return nil, pagelink.Errorf(pagelink.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// stripFragment returns the address without its fragment, the coarse form
// that survives scrolling and heading changes.
func stripFragment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

// hostMatches reports whether host is one of hosts or a subdomain of one.
func hostMatches(host string, hosts []string) bool {
	for _, h := range hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
