package mock

import (
	"context"

	"github.com/nodejs/i18n"
)

var _ i18n.Reconciler = (*Reconciler)(nil)

// Reconciler is a mock implementation of i18n.Reconciler.
type Reconciler struct {
	ReconcileFn func(ctx context.Context, version string) (map[string]*i18n.ReconciliationReport, error)
	CleanFn     func(ctx context.Context, version string) (*i18n.CleanResult, error)
}

func (r *Reconciler) Reconcile(ctx context.Context, version string) (map[string]*i18n.ReconciliationReport, error) {
	return r.ReconcileFn(ctx, version)
}

func (r *Reconciler) Clean(ctx context.Context, version string) (*i18n.CleanResult, error) {
	return r.CleanFn(ctx, version)
}
