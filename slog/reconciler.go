package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/nodejs/i18n"
)

// Ensure LoggingReconciler implements i18n.Reconciler.
var _ i18n.Reconciler = (*LoggingReconciler)(nil)

// LoggingReconciler wraps a Reconciler with logging.
type LoggingReconciler struct {
	next   i18n.Reconciler
	logger *slog.Logger
}

// NewLoggingReconciler creates a new LoggingReconciler.
func NewLoggingReconciler(next i18n.Reconciler, logger *slog.Logger) *LoggingReconciler {
	return &LoggingReconciler{next: next, logger: logger}
}

// Reconcile delegates to the wrapped reconciler and logs the orphan count.
func (r *LoggingReconciler) Reconcile(ctx context.Context, version string) (reports map[string]*i18n.ReconciliationReport, err error) {
	defer func(begin time.Time) {
		orphans := 0
		for _, report := range reports {
			orphans += len(report.Orphans)
		}
		r.logger.Info("reconcile",
			"version", version,
			"locales", len(reports),
			"orphans", orphans,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Reconcile(ctx, version)
}

// Clean delegates to the wrapped reconciler and logs deletions.
// Partial failures are logged at warn level.
func (r *LoggingReconciler) Clean(ctx context.Context, version string) (result *i18n.CleanResult, err error) {
	defer func(begin time.Time) {
		var deleted, failed int
		if result != nil {
			deleted, failed = len(result.Deleted), len(result.Failures)
		}
		level := slog.LevelInfo
		if failed > 0 {
			level = slog.LevelWarn
		}
		r.logger.Log(ctx, level, "clean",
			"version", version,
			"deleted", deleted,
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Clean(ctx, version)
}
