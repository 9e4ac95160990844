package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/langex"
)

// Ensure LoggingPageExtractor implements langex.PageExtractor.
var _ langex.PageExtractor = (*LoggingPageExtractor)(nil)

// LoggingPageExtractor wraps a PageExtractor with debug logging.
type LoggingPageExtractor struct {
	next   langex.PageExtractor
	logger *slog.Logger
}

// NewLoggingPageExtractor creates a new LoggingPageExtractor.
func NewLoggingPageExtractor(next langex.PageExtractor, logger *slog.Logger) *LoggingPageExtractor {
	return &LoggingPageExtractor{next: next, logger: logger}
}

// ExtractPage delegates to the wrapped extractor and logs the outcome.
// Each rejected item is logged at warn level.
func (x *LoggingPageExtractor) ExtractPage(html []byte) (result *langex.PageResult, err error) {
	defer func(begin time.Time) {
		var items, persons, rejected int
		if result != nil {
			items, persons, rejected = result.Items, len(result.Persons), len(result.Rejections)
			for _, rej := range result.Rejections {
				x.logger.Warn("item rejected",
					"item", rej.Item,
					"reason", rej.Reason,
					"got", rej.Got,
				)
			}
		}
		x.logger.Info("extract page",
			"bytes", len(html),
			"items", items,
			"persons", persons,
			"rejected", rejected,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return x.next.ExtractPage(html)
}
