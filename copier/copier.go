// Package copier orchestrates a single activation: snapshot the active page,
// extract link data through the matching site handler, decide whether this is
// a repeat activation, render the link and place it on the clipboard.
package copier

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagelink"
	"github.com/google/uuid"
)

// Result describes a completed activation.
type Result struct {
	// Info is the extracted page info.
	Info *pagelink.PageInfo

	// Link is the rendered label/location pair placed on the clipboard.
	Link pagelink.Link

	// Handler is the name of the site handler that produced Info.
	Handler string

	// Repeat is true when this activation repeated the previous one within
	// the activation window.
	Repeat bool

	// Markdown is the Markdown rendering of Link, when a converter is
	// configured.
	Markdown string

	includeSecondary bool
}

// Preview returns the user-facing summary of what was copied.
func (r *Result) Preview() string {
	return r.Info.Preview(r.includeSecondary)
}

// Copier runs activations. All collaborators except Checker, Converter and
// Notifier are required.
type Copier struct {
	// Source snapshots the active browser page.
	Source pagelink.PageSource

	// Registry selects the site handler for the page address.
	Registry *pagelink.Registry

	// Detector decides repeats against the activation cache and records
	// successful activations.
	Detector *pagelink.Detector

	// Checker is an optional second opinion on repeats (e.g. the clipboard
	// itself). An activation is a repeat when either source says so.
	Checker pagelink.RepeatChecker

	// Gateway writes the rendered link to the clipboard.
	Gateway *pagelink.Gateway

	// Notifier receives the terminal success or error notification plus any
	// debug notifications. Optional.
	Notifier pagelink.Notifier

	// Converter additionally renders the link as Markdown. Optional.
	Converter pagelink.Converter

	// Debug enables per-step debug notifications, correlated by a generated
	// activation id.
	Debug bool
}

// Run performs one activation. Exactly one terminal notification is emitted:
// success with a preview of what was copied, or error with a human-readable
// message. The cache is only updated on success.
func (c *Copier) Run(ctx context.Context) (*Result, error) {
	result, err := c.run(ctx)
	if err != nil {
		c.notify(pagelink.NotifyError, pagelink.ErrorMessage(err))
		return nil, err
	}

	c.notify(pagelink.NotifySuccess, "Copied: "+result.Preview())
	return result, nil
}

func (c *Copier) run(ctx context.Context) (*Result, error) {
	id := uuid.NewString()

	page, err := c.Source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	c.debugf(id, "snapshot url=%s", page.URL)

	handler := c.Registry.Select(page.URL)
	if handler == nil {
		return nil, pagelink.Errorf(pagelink.ENOHANDLER, "no handler found for %q", page.URL)
	}
	c.debugf(id, "handler=%s", handler.Name())

	info, err := handler.Extract(ctx, page)
	if err != nil {
		return nil, err
	}
	if err := info.Validate(); err != nil {
		return nil, err
	}

	isRepeat := c.Detector.IsRepeat(ctx, info)
	if !isRepeat && c.Checker != nil {
		isRepeat = c.Checker.IsRepeat(ctx, info)
	}
	c.debugf(id, "repeat=%t mode=%s", isRepeat, info.Mode)

	// A repeat flips which of the two renderings is produced. In the default
	// mode the repeat adds the detail pair; in the inverted mode the first
	// activation already leads with the detail and the repeat collapses to
	// the coarse pair.
	includeSecondary := !isRepeat
	if info.Mode == pagelink.ModeInverted {
		includeSecondary = isRepeat
	}

	link := info.RenderLink(includeSecondary)
	if err := c.Gateway.Write(ctx, info.RichText(includeSecondary), info.PlainText(includeSecondary)); err != nil {
		return nil, err
	}
	c.debugf(id, "copied label=%q url=%s", link.Label, link.URL)

	c.Detector.Commit(ctx, info)

	result := &Result{
		Info:             info,
		Link:             link,
		Handler:          handler.Name(),
		Repeat:           isRepeat,
		includeSecondary: includeSecondary,
	}

	if c.Converter != nil {
		md, err := c.Converter.Convert(info.RichText(includeSecondary))
		if err != nil {
			c.debugf(id, "markdown conversion failed: %s", pagelink.ErrorMessage(err))
		} else {
			result.Markdown = md
		}
	}

	return result, nil
}

func (c *Copier) notify(kind pagelink.NotificationKind, message string) {
	if c.Notifier == nil {
		return
	}
	c.Notifier.Notify(pagelink.Notification{Kind: kind, Message: message})
}

func (c *Copier) debugf(id, format string, args ...any) {
	if !c.Debug {
		return
	}
	c.notify(pagelink.NotifyDebug, fmt.Sprintf("[%s] ", id)+fmt.Sprintf(format, args...))
}
