// Package slog provides logging decorators for langex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/langex"
)

// Ensure LoggingFetcher implements langex.Fetcher.
var _ langex.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   langex.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next langex.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
// Header values are not logged since they usually carry session cookies.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, headers langex.Headers) (html []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"headers", len(headers),
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, headers)
}
