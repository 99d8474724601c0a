package i18n

import "context"

// ReconciliationReport lists files in a translated locale that have no
// counterpart in the source locale. Orphans are relative to the locale's doc
// directory and sorted.
type ReconciliationReport struct {
	Version string   `json:"version"`
	Locale  string   `json:"locale"`
	Orphans []string `json:"orphans"`
}

// Empty reports whether the locale is free of orphaned translations.
func (r *ReconciliationReport) Empty() bool {
	return len(r.Orphans) == 0
}

// DeletionFailure records an orphan that could not be removed.
type DeletionFailure struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// CleanResult reports the outcome of removing orphaned translations.
type CleanResult struct {
	Deleted  []string          `json:"deleted"`
	Failures []DeletionFailure `json:"failures,omitempty"`
}

// Reconciler compares translated locales against the source locale.
//
// Only translated files missing from the source are reported. Source files
// that are not yet translated are expected and never reported.
type Reconciler interface {
	// Reconcile returns a report for every locale of version except the
	// source locale, keyed by locale. It never modifies the tree.
	// Returns ENOTFOUND if the version directory does not exist.
	Reconcile(ctx context.Context, version string) (map[string]*ReconciliationReport, error)

	// Clean removes every orphan found by Reconcile. Individual deletion
	// failures are collected in the result rather than returned.
	Clean(ctx context.Context, version string) (*CleanResult, error)
}
