package fs

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"sync"

	"github.com/nodejs/i18n"
	"golang.org/x/sync/errgroup"
)

// Ensure Reconciler implements i18n.Reconciler at compile time.
var _ i18n.Reconciler = (*Reconciler)(nil)

// Reconciler compares the doc directory of each translated locale with the
// doc directory of the source locale.
//
// Reconcile only reads the tree and is safe to call concurrently for
// different versions. Clean must not overlap with other calls on the same
// version.
type Reconciler struct {
	root         string
	sourceLocale string
	docDir       string
	supported    []string
	logger       *slog.Logger
}

// NewReconciler creates a Reconciler for cfg.ContentRoot. Only versions in
// cfg.SupportedVersions can be reconciled or cleaned.
func NewReconciler(cfg i18n.Config, logger *slog.Logger) *Reconciler {
	source := cfg.SourceLocale
	if source == "" {
		source = i18n.SourceLocale
	}
	return &Reconciler{
		root:         cfg.ContentRoot,
		sourceLocale: source,
		docDir:       cfg.DocDir,
		supported:    slices.Clone(cfg.SupportedVersions),
		logger:       orDiscard(logger),
	}
}

// Reconcile reports, per translated locale, the files with no counterpart
// at the same path in the source locale. A missing source locale counts as
// an empty source, so every translated file is an orphan. A translated
// locale whose doc directory cannot be read is logged and left out.
//
// Returns EVERSION if version is not supported and ENOTFOUND if its
// directory does not exist.
func (r *Reconciler) Reconcile(ctx context.Context, version string) (map[string]*i18n.ReconciliationReport, error) {
	if err := i18n.CheckVersion(version, r.supported); err != nil {
		return nil, err
	}

	versionDir := filepath.Join(r.root, version)
	if err := requireDir(versionDir); err != nil {
		return nil, err
	}

	locales, err := subdirs(versionDir)
	if err != nil {
		return nil, err
	}

	source, err := r.files(ctx, version, r.sourceLocale)
	if err != nil {
		return nil, err
	}
	sourceSet := make(map[string]struct{}, len(source))
	for _, rel := range source {
		sourceSet[rel] = struct{}{}
	}

	reports := make(map[string]*i18n.ReconciliationReport)
	for _, locale := range locales {
		if locale == r.sourceLocale {
			continue
		}

		translated, err := r.files(ctx, version, locale)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		} else if err != nil {
			r.logger.Warn("skipping unreadable locale", "version", version, "locale", locale, "err", err)
			continue
		}

		report := &i18n.ReconciliationReport{
			Version: version,
			Locale:  locale,
			Orphans: []string{},
		}
		for _, rel := range translated {
			if _, ok := sourceSet[rel]; !ok {
				report.Orphans = append(report.Orphans, rel)
			}
		}
		sort.Strings(report.Orphans)
		reports[locale] = report
	}
	return reports, nil
}

// Clean removes every orphan reported by Reconcile. Files that cannot be
// removed are logged, recorded as EDELETE failures and do not stop the
// remaining deletions.
func (r *Reconciler) Clean(ctx context.Context, version string) (*i18n.CleanResult, error) {
	reports, err := r.Reconcile(ctx, version)
	if err != nil {
		return nil, err
	}

	locales := make([]string, 0, len(reports))
	for locale := range reports {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	result := &i18n.CleanResult{Deleted: []string{}}
	for _, locale := range locales {
		for _, rel := range reports[locale].Orphans {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			path := r.docPath(version, locale, rel)
			if err := os.Remove(path); err != nil {
				r.logger.Warn("failed to delete orphaned translation", "path", path, "err", err)
				delErr := i18n.Errorf(i18n.EDELETE, "remove %s: %v", path, err)
				result.Failures = append(result.Failures, i18n.DeletionFailure{
					Path:    path,
					Message: delErr.Message,
					Err:     delErr,
				})
				continue
			}
			r.logger.Debug("deleted orphaned translation", "path", path)
			result.Deleted = append(result.Deleted, path)
		}
	}
	return result, nil
}

func (r *Reconciler) docPath(version, locale, rel string) string {
	return filepath.Join(r.root, version, locale, r.docDir, filepath.FromSlash(rel))
}

// files lists every file under version/locale/doc relative to that doc
// directory. A missing doc directory yields no files.
func (r *Reconciler) files(ctx context.Context, version, locale string) ([]string, error) {
	entries, err := Walk(ctx, filepath.Join(r.root, version, locale, r.docDir), "", r.logger)
	if i18n.ErrorCode(err) == i18n.ENOTFOUND {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	rels := make([]string, len(entries))
	for i, e := range entries {
		rels[i] = e.RelativePath
	}
	return rels, nil
}

// ReconcileVersions runs Reconcile for each version concurrently and returns
// the reports keyed by version. Version subtrees are disjoint, so the reads
// do not interfere. The first error cancels the remaining work.
func ReconcileVersions(ctx context.Context, r i18n.Reconciler, versions []string) (map[string]map[string]*i18n.ReconciliationReport, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string]map[string]*i18n.ReconciliationReport, len(versions))

	for _, version := range versions {
		g.Go(func() error {
			reports, err := r.Reconcile(ctx, version)
			if err != nil {
				return err
			}
			mu.Lock()
			results[version] = reports
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
