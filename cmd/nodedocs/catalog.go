package main

import (
	"fmt"
	"sort"

	"github.com/nodejs/i18n"
)

// Run executes the catalog command.
func (c *CatalogCmd) Run(deps *Dependencies) error {
	catalogs, err := deps.Catalogs.BuildCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", i18n.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, catalogs)
	}

	if len(catalogs) == 0 {
		fmt.Fprintln(deps.Stdout, "No versions found.")
		return nil
	}

	for _, catalog := range catalogs {
		fmt.Fprintf(deps.Stdout, "%s (%d locales):\n", catalog.Version, len(catalog.Locales))

		codes := make([]string, 0, len(catalog.Locales))
		for code := range catalog.Locales {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		for _, code := range codes {
			e := catalog.Locales[code]
			fmt.Fprintf(deps.Stdout, "  %-8s %s (%s)", code, e.LanguageName, e.LanguageNativeName)
			if e.CountryName != "" {
				fmt.Fprintf(deps.Stdout, ", %s", e.CountryName)
			}
			fmt.Fprintln(deps.Stdout)
		}
	}
	return nil
}
