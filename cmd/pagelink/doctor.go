package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pagelink"
	"golang.org/x/sync/errgroup"
)

// Run executes the doctor command. The probes run concurrently; each failure
// is reported but does not stop the others.
func (c *DoctorCmd) Run(deps *Dependencies) error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"browser", func() error { return checkBrowser(deps) }},
		{"clipboard", func() error { return checkClipboard(deps) }},
		{"cache", func() error { return checkCache(deps) }},
	}

	results := make([]error, len(checks))

	var g errgroup.Group
	for i, check := range checks {
		g.Go(func() error {
			results[i] = check.fn()
			return nil
		})
	}
	_ = g.Wait()

	failed := false
	for i, check := range checks {
		if results[i] != nil {
			failed = true
			fmt.Fprintf(deps.Stdout, "FAIL  %-9s %s\n", check.name, results[i])
			continue
		}
		fmt.Fprintf(deps.Stdout, "OK    %s\n", check.name)
	}

	if failed {
		return pagelink.Errorf(pagelink.EUNAVAILABLE, "environment checks failed")
	}
	return nil
}

// checkBrowser verifies that a browser page can be snapshotted.
func checkBrowser(deps *Dependencies) error {
	source, err := deps.ConnectSource()
	if err != nil {
		return fmt.Errorf("cannot connect: %w", err)
	}
	defer source.Close()

	if _, err := source.Snapshot(deps.Ctx); err != nil {
		return fmt.Errorf("cannot snapshot a page: %w", err)
	}
	return nil
}

// checkClipboard verifies the clipboard can be read and reports whether the
// rich flavor is available. Nothing is written; doctor must not clobber the
// user's clipboard.
func checkClipboard(deps *Dependencies) error {
	if _, err := deps.Clipboard.Read(deps.Ctx); err != nil {
		return fmt.Errorf("cannot read clipboard: %w", err)
	}
	if !deps.Clipboard.SupportsHTML() {
		return fmt.Errorf("no text/html tooling found; links will paste as plain text")
	}
	return nil
}

// checkCache verifies the activation cache accepts writes. A real cached
// activation may be sitting in the slot mid-window, so whatever was there
// is put back afterwards.
func checkCache(deps *Dependencies) error {
	prior, _ := deps.Store.Load(deps.Ctx) // nil when the slot is empty

	probe := &pagelink.CachedActivation{
		Info: &pagelink.PageInfo{
			PrimaryLabel: "doctor probe",
			PrimaryURL:   "https://example.invalid/doctor",
			Mode:         pagelink.ModeDefault,
		},
		CapturedAt: time.Now().UTC(),
	}

	if err := deps.Store.Store(deps.Ctx, probe); err != nil {
		return fmt.Errorf("cannot write cache: %w", err)
	}

	if prior != nil {
		if err := deps.Store.Store(deps.Ctx, prior); err != nil {
			return fmt.Errorf("cannot restore cache: %w", err)
		}
		return nil
	}
	if err := deps.Store.Clear(deps.Ctx); err != nil {
		return fmt.Errorf("cannot clear cache: %w", err)
	}
	return nil
}
