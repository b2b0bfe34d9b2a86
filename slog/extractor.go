// Package slog provides logging decorators for pith services using the
// standard structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/ogniew/pith"
)

// Ensure LoggingExtractor implements pith.Extractor.
var _ pith.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-call logging.
type LoggingExtractor struct {
	next   pith.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pith.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (res *pith.Result, err error) {
	defer func(begin time.Time) {
		var textBytes int
		var title string
		if res != nil {
			textBytes = len(res.Text)
			title = res.Title
		}
		e.logger.Info("extract",
			"input_bytes", len(html),
			"text_bytes", textBytes,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
