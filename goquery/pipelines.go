package goquery

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/pagelink"
)

// Ensure PipelinesHandler implements pagelink.Handler at compile time.
var _ pagelink.Handler = (*PipelinesHandler)(nil)

// pipelinesRouteRe parses ".../applications/<app>/executions[/<executionId>]"
// routes.
var pipelinesRouteRe = regexp.MustCompile(`^/applications/([^/]+)/executions(?:/([^/?#]+))?`)

// PipelinesHandler extracts link data from pipeline-execution dashboards.
// These pages want the detailed view by default: the first activation yields
// the execution link and the repeat activation the stable application link,
// so the handler uses the inverted presentation mode.
type PipelinesHandler struct {
	hosts []string
}

// NewPipelinesHandler creates a PipelinesHandler for the given dashboard
// hosts.
func NewPipelinesHandler(hosts ...string) *PipelinesHandler {
	return &PipelinesHandler{hosts: hosts}
}

// Name returns the handler's identifier.
func (h *PipelinesHandler) Name() string {
	return "pipelines"
}

// Recognize reports whether the address is an executions route on a
// dashboard host. Dashboards are hash-routed, so the route may live in the
// fragment rather than the path.
func (h *PipelinesHandler) Recognize(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return hostMatches(u.Host, h.hosts) && pipelinesRouteRe.MatchString(route(u))
}

// Extract scrapes the application name and, when an execution id is present
// in the route, the heading of that execution's group.
func (h *PipelinesHandler) Extract(ctx context.Context, page *pagelink.Page) (*pagelink.PageInfo, error) {
	u, err := url.Parse(page.URL)
	if err != nil {
		return nil, pagelink.Errorf(pagelink.EEXTRACT, "unparseable dashboard address: %v", err)
	}
	m := pipelinesRouteRe.FindStringSubmatch(route(u))
	if m == nil {
		return nil, pagelink.Errorf(pagelink.EEXTRACT, "no executions route in address %q", page.URL)
	}
	app, execID := m[1], m[2]

	info := &pagelink.PageInfo{
		PrimaryLabel: app,
		PrimaryURL:   coarseExecutionsURL(u),
		Mode:         pagelink.ModeInverted,
	}

	if execID == "" {
		return info, nil
	}

	label := h.executionHeading(page, execID)
	if label == "" {
		// Execution subtree absent from the DOM (collapsed, still
		// loading); the id itself still identifies the execution.
		label = execID
	}
	info.SecondaryLabel = label
	info.SecondaryURL = page.URL

	return info, nil
}

// executionHeading locates the DOM subtree whose identifier embeds the
// execution id, walks up to its containing execution group, and reads the
// heading scoped to that group.
func (h *PipelinesHandler) executionHeading(page *pagelink.Page, execID string) string {
	doc, err := parseDoc(page)
	if err != nil {
		return ""
	}

	node := doc.Find(fmt.Sprintf("[id*=%q]", execID)).First()
	if node.Length() == 0 {
		return ""
	}

	group := node.Closest(".execution-group")
	if group.Length() == 0 {
		return ""
	}

	return strings.TrimSpace(group.Find(".execution-group-heading, h4").First().Text())
}

// route returns the navigable route of a dashboard address: the fragment
// when hash-routed, the path otherwise.
func route(u *url.URL) string {
	if strings.HasPrefix(u.Fragment, "/") {
		return u.Fragment
	}
	return u.Path
}

// coarseExecutionsURL truncates the address after the "executions" route
// segment, yielding the stable application-level link.
func coarseExecutionsURL(u *url.URL) string {
	coarse := *u
	if strings.HasPrefix(u.Fragment, "/") {
		if m := pipelinesRouteRe.FindStringSubmatch(u.Fragment); m != nil {
			coarse.Fragment = "/applications/" + m[1] + "/executions"
			coarse.RawFragment = ""
		}
	} else if m := pipelinesRouteRe.FindStringSubmatch(u.Path); m != nil {
		coarse.Path = "/applications/" + m[1] + "/executions"
		coarse.Fragment = ""
		coarse.RawFragment = ""
	}
	coarse.RawQuery = ""
	return coarse.String()
}
