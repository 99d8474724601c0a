package main

import (
	"fmt"

	"github.com/nodejs/i18n"
)

type pageJSON struct {
	Version      string `json:"version"`
	Locale       string `json:"locale"`
	RelativePath string `json:"relativePath"`
	FullPath     string `json:"fullPath"`
	Slug         string `json:"slug"`
	Category     string `json:"category"`
}

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	idx := deps.Library.Index()

	pages, err := idx.Pages(c.Version, c.Locale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", i18n.ErrorMessage(err))
		return err
	}

	if deps.JSON {
		out := make([]pageJSON, 0, len(pages))
		for _, p := range pages {
			out = append(out, pageJSON{
				Version:      p.Version,
				Locale:       p.Locale,
				RelativePath: p.RelativePath,
				FullPath:     p.FullPath,
				Slug:         p.Slug(),
				Category:     p.Category(),
			})
		}
		return writeJSON(deps.Stdout, out)
	}

	version, locale := c.Version, c.Locale
	if version == "" {
		version = idx.Latest()
	}
	if locale == "" {
		locale = deps.Config.SourceLocale
	}

	if len(pages) == 0 {
		fmt.Fprintf(deps.Stdout, "No pages found for %s/%s.\n", version, locale)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Pages for %s/%s (%d total):\n\n", version, locale, len(pages))
	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "  %s\n", p.RelativePath)
	}
	return nil
}
