package main

import (
	"fmt"

	"github.com/fwojciec/pagelink"
	"golang.org/x/time/rate"
)

// Run executes the watch command. It polls the active tab's address at the
// configured interval and runs one activation whenever it changes. The loop
// ends when the context is cancelled or the browser goes away.
func (c *WatchCmd) Run(deps *Dependencies) error {
	limiter := rate.NewLimiter(rate.Every(c.Interval), 1)

	fmt.Fprintf(deps.Stdout, "Watching for address changes every %s. Ctrl-C to stop.\n", c.Interval)

	var lastURL string
	for {
		if err := limiter.Wait(deps.Ctx); err != nil {
			return nil // context cancelled
		}

		page, err := deps.Source.Snapshot(deps.Ctx)
		if err != nil {
			if deps.Ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("lost browser connection: %s", pagelink.ErrorMessage(err))
		}

		if page.URL == lastURL {
			continue
		}
		lastURL = page.URL

		// Errors are already reported through the notifier; an unsupported
		// or unextractable page must not stop the watch.
		_, _ = deps.Copier.Run(deps.Ctx)
	}
}
