package mock

import (
	"context"

	"github.com/nodejs/i18n"
)

// Compile-time interface verification.
var (
	_ i18n.LocaleResolver = (*LocaleResolver)(nil)
	_ i18n.CatalogBuilder = (*CatalogBuilder)(nil)
)

// LocaleResolver is a mock implementation of i18n.LocaleResolver.
type LocaleResolver struct {
	ResolveFn func(code string) i18n.LocaleInfo
}

func (r *LocaleResolver) Resolve(code string) i18n.LocaleInfo {
	return r.ResolveFn(code)
}

// CatalogBuilder is a mock implementation of i18n.CatalogBuilder.
type CatalogBuilder struct {
	BuildCatalogFn func(ctx context.Context) ([]*i18n.VersionCatalog, error)
}

func (b *CatalogBuilder) BuildCatalog(ctx context.Context) ([]*i18n.VersionCatalog, error) {
	return b.BuildCatalogFn(ctx)
}
