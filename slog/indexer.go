// Package slog provides logging decorators for i18n services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/nodejs/i18n"
)

// Ensure LoggingIndexer implements i18n.Indexer.
var _ i18n.Indexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps an Indexer with logging.
type LoggingIndexer struct {
	next   i18n.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next i18n.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// Index delegates to the wrapped indexer and logs the operation.
func (ix *LoggingIndexer) Index(ctx context.Context) (pages []*i18n.Page, err error) {
	defer func(begin time.Time) {
		ix.logger.Info("index",
			"pages", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return ix.next.Index(ctx)
}
