package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/nodejs/i18n"
)

// Ensure LoggingCatalogBuilder implements i18n.CatalogBuilder.
var _ i18n.CatalogBuilder = (*LoggingCatalogBuilder)(nil)

// LoggingCatalogBuilder wraps a CatalogBuilder with logging.
type LoggingCatalogBuilder struct {
	next   i18n.CatalogBuilder
	logger *slog.Logger
}

// NewLoggingCatalogBuilder creates a new LoggingCatalogBuilder.
func NewLoggingCatalogBuilder(next i18n.CatalogBuilder, logger *slog.Logger) *LoggingCatalogBuilder {
	return &LoggingCatalogBuilder{next: next, logger: logger}
}

// BuildCatalog delegates to the wrapped builder and logs the operation.
func (b *LoggingCatalogBuilder) BuildCatalog(ctx context.Context) (catalogs []*i18n.VersionCatalog, err error) {
	defer func(begin time.Time) {
		locales := 0
		for _, c := range catalogs {
			locales += len(c.Locales)
		}
		b.logger.Info("build catalog",
			"versions", len(catalogs),
			"locales", locales,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.BuildCatalog(ctx)
}
