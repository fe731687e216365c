package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelink"
)

// Ensure LoggingClipboard implements pagelink.Clipboard.
var _ pagelink.Clipboard = (*LoggingClipboard)(nil)

// LoggingClipboard wraps a Clipboard with debug logging.
type LoggingClipboard struct {
	next   pagelink.Clipboard
	logger *slog.Logger
}

// NewLoggingClipboard creates a new LoggingClipboard.
func NewLoggingClipboard(next pagelink.Clipboard, logger *slog.Logger) *LoggingClipboard {
	return &LoggingClipboard{next: next, logger: logger}
}

// WriteHTML logs the multi-flavor write and delegates to the wrapped clipboard.
func (c *LoggingClipboard) WriteHTML(ctx context.Context, html, text string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("clipboard write",
			"flavor", "html+text",
			"htmlBytes", len(html),
			"textBytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.WriteHTML(ctx, html, text)
}

// WriteText logs the plain-text write and delegates to the wrapped clipboard.
func (c *LoggingClipboard) WriteText(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("clipboard write",
			"flavor", "text",
			"textBytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.WriteText(ctx, text)
}

// Read delegates to the wrapped clipboard.
func (c *LoggingClipboard) Read(ctx context.Context) (*pagelink.Payload, error) {
	return c.next.Read(ctx)
}

// SupportsHTML delegates to the wrapped clipboard.
func (c *LoggingClipboard) SupportsHTML() bool {
	return c.next.SupportsHTML()
}
