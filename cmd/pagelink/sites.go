package main

import (
	"fmt"

	"github.com/fwojciec/pagelink"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	if c.URL == "" {
		for _, h := range deps.Registry.Handlers() {
			fmt.Fprintln(deps.Stdout, h.Name())
		}
		return nil
	}

	matched := deps.Registry.Matches(c.URL)
	if len(matched) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no handler recognizes %q\n", c.URL)
		return pagelink.Errorf(pagelink.ENOHANDLER, "no handler found for %q", c.URL)
	}

	for i, h := range matched {
		marker := " "
		if i == 0 {
			// First match wins at selection time.
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s\n", marker, h.Name())
	}

	if len(matched) > 1 {
		fmt.Fprintf(deps.Stderr, "warning: %d handlers recognize this URL; selection order decides\n", len(matched))
	}

	return nil
}
