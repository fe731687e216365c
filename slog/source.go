// Package slog provides logging decorators for the application's boundary
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelink"
)

// Ensure LoggingSource implements pagelink.PageSource.
var _ pagelink.PageSource = (*LoggingSource)(nil)

// LoggingSource wraps a PageSource with debug logging.
type LoggingSource struct {
	next   pagelink.PageSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next pagelink.PageSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Snapshot logs the captured page and delegates to the wrapped source.
func (s *LoggingSource) Snapshot(ctx context.Context) (page *pagelink.Page, err error) {
	defer func(begin time.Time) {
		var url string
		var bytes int
		if page != nil {
			url = page.URL
			bytes = len(page.HTML)
		}
		s.logger.Info("snapshot",
			"url", url,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Snapshot(ctx)
}

// Close delegates to the wrapped source.
func (s *LoggingSource) Close() error {
	return s.next.Close()
}
