// Package slog provides logging decorators for harvest interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/harvest"
)

// Ensure LoggingExtractor implements harvest.Extractor.
var _ harvest.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with extraction logging.
type LoggingExtractor struct {
	next   harvest.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next harvest.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// CanHandle delegates to the wrapped extractor.
func (e *LoggingExtractor) CanHandle(source string) bool {
	return e.next.CanHandle(source)
}

// Extract logs the source and outcome and delegates to the wrapped
// extractor.
func (e *LoggingExtractor) Extract(ctx context.Context, source string) (items []*harvest.Item, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"source", source,
			"items", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, source)
}
