package main

import (
	"fmt"

	"github.com/nodejs/i18n"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion. Run 'nodedocs reconcile --version %s' for a dry run.\n", c.Version)
		return i18n.Errorf(i18n.EINVALID, "use --force to confirm deletion")
	}

	result, err := deps.Reconciler.Clean(deps.Ctx, c.Version)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", i18n.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		if err := writeJSON(deps.Stdout, result); err != nil {
			return err
		}
	} else {
		for _, path := range result.Deleted {
			fmt.Fprintf(deps.Stdout, "Deleted %s\n", path)
		}
		if len(result.Deleted) == 0 && len(result.Failures) == 0 {
			fmt.Fprintf(deps.Stdout, "No orphaned translations in %s\n", c.Version)
		}
	}

	for _, f := range result.Failures {
		fmt.Fprintf(deps.Stderr, "error: %s\n", i18n.ErrorMessage(f.Err))
	}
	if len(result.Failures) > 0 {
		return i18n.Errorf(i18n.EDELETE, "%d of %d deletions failed", len(result.Failures), len(result.Failures)+len(result.Deleted))
	}
	return nil
}
