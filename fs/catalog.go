package fs

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/nodejs/i18n"
)

// Ensure CatalogBuilder implements i18n.CatalogBuilder at compile time.
var _ i18n.CatalogBuilder = (*CatalogBuilder)(nil)

// CatalogBuilder lists version and locale directories and resolves
// metadata for every locale found.
type CatalogBuilder struct {
	root      string
	resolver  i18n.LocaleResolver
	overrides i18n.LocaleOverrides
	logger    *slog.Logger
}

// NewCatalogBuilder creates a CatalogBuilder for cfg.ContentRoot.
// Overrides from cfg are applied after resolution.
func NewCatalogBuilder(cfg i18n.Config, resolver i18n.LocaleResolver, logger *slog.Logger) *CatalogBuilder {
	return &CatalogBuilder{
		root:      cfg.ContentRoot,
		resolver:  resolver,
		overrides: cfg.LocaleOverrides.Clone(),
		logger:    orDiscard(logger),
	}
}

// BuildCatalog returns one catalog per version directory of the content root.
// Files at either level are ignored. A version directory that cannot be
// listed is logged and skipped.
func (b *CatalogBuilder) BuildCatalog(ctx context.Context) ([]*i18n.VersionCatalog, error) {
	if err := requireDir(b.root); err != nil {
		return nil, err
	}
	versions, err := subdirs(b.root)
	if err != nil {
		return nil, err
	}

	catalogs := make([]*i18n.VersionCatalog, 0, len(versions))
	for _, version := range versions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		locales, err := subdirs(filepath.Join(b.root, version))
		if err != nil {
			b.logger.Warn("skipping unreadable version directory", "version", version, "err", err)
			continue
		}

		catalog := &i18n.VersionCatalog{
			Version: version,
			Locales: make(map[string]*i18n.LocaleEntry, len(locales)),
		}
		for _, code := range locales {
			catalog.Locales[code] = b.resolve(code)
		}
		catalogs = append(catalogs, catalog)
	}
	return catalogs, nil
}

func (b *CatalogBuilder) resolve(code string) *i18n.LocaleEntry {
	entry := &i18n.LocaleEntry{
		Code:       code,
		LocaleInfo: b.resolver.Resolve(code),
	}
	b.overrides.Apply(entry)
	return entry
}
