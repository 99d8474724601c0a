package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/nodejs/i18n"
	"github.com/nodejs/i18n/fs"
)

// Run executes the reconcile command.
func (c *ReconcileCmd) Run(deps *Dependencies) error {
	versions := []string{c.Version}
	if c.Version == "" {
		versions = presentVersions(deps.Config)
	}

	results, err := fs.ReconcileVersions(deps.Ctx, deps.Reconciler, versions)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", i18n.ErrorMessage(err))
		return err
	}

	var reports []*i18n.ReconciliationReport
	orphans := 0
	for _, version := range versions {
		byLocale := results[version]
		locales := make([]string, 0, len(byLocale))
		for locale := range byLocale {
			locales = append(locales, locale)
		}
		sort.Strings(locales)
		for _, locale := range locales {
			reports = append(reports, byLocale[locale])
			orphans += len(byLocale[locale].Orphans)
		}
	}

	if deps.JSON {
		if err := writeJSON(deps.Stdout, reports); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			if r.Empty() {
				fmt.Fprintf(deps.Stdout, "%s/%s: ok\n", r.Version, r.Locale)
				continue
			}
			fmt.Fprintf(deps.Stdout, "%s/%s: %d orphaned\n", r.Version, r.Locale, len(r.Orphans))
			for _, o := range r.Orphans {
				fmt.Fprintf(deps.Stdout, "  %s\n", o)
			}
		}
	}

	if c.Strict && orphans > 0 {
		fmt.Fprintf(deps.Stderr, "error: %d orphaned translations found. Run 'nodedocs clean' to remove them.\n", orphans)
		return i18n.Errorf(i18n.EINVALID, "%d orphaned translations found", orphans)
	}
	return nil
}

// presentVersions returns the supported versions that have a directory in
// the content root, in supported order.
func presentVersions(cfg i18n.Config) []string {
	var out []string
	for _, v := range cfg.SupportedVersions {
		if info, err := os.Stat(filepath.Join(cfg.ContentRoot, v)); err == nil && info.IsDir() {
			out = append(out, v)
		}
	}
	return out
}
