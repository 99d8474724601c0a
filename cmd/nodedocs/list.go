package main

import (
	"fmt"
	"strings"
)

// Run executes the locales command.
func (c *LocalesCmd) Run(deps *Dependencies) error {
	locales := deps.Library.Index().Locales()

	if deps.JSON {
		return writeJSON(deps.Stdout, locales)
	}

	if len(locales) == 0 {
		fmt.Fprintln(deps.Stdout, "No locales found.")
		return nil
	}
	for _, l := range locales {
		fmt.Fprintln(deps.Stdout, l)
	}
	return nil
}

// Run executes the versions command.
func (c *VersionsCmd) Run(deps *Dependencies) error {
	idx := deps.Library.Index()
	found := idx.Versions()

	if deps.JSON {
		return writeJSON(deps.Stdout, struct {
			Versions          []string `json:"versions"`
			SupportedVersions []string `json:"supportedVersions"`
		}{found, idx.SupportedVersions()})
	}

	present := make(map[string]bool, len(found))
	for _, v := range found {
		present[v] = true
	}

	for i, v := range idx.SupportedVersions() {
		var notes []string
		if i == 0 {
			notes = append(notes, "latest")
		}
		if !present[v] {
			notes = append(notes, "missing")
		}
		if len(notes) > 0 {
			fmt.Fprintf(deps.Stdout, "%s (%s)\n", v, strings.Join(notes, ", "))
		} else {
			fmt.Fprintln(deps.Stdout, v)
		}
		delete(present, v)
	}
	for _, v := range found {
		if present[v] {
			fmt.Fprintf(deps.Stdout, "%s (unsupported)\n", v)
		}
	}
	return nil
}

