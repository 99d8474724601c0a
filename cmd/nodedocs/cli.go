package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/nodejs/i18n"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Config     i18n.Config
	JSON       bool
	Library    *i18n.Library
	Catalogs   i18n.CatalogBuilder
	Reconciler i18n.Reconciler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string   `short:"c" env:"NODEDOCS_CONFIG" help:"YAML config file"`
	Content   string   `env:"NODEDOCS_CONTENT" help:"Content root directory (overrides config)"`
	Supported []string `short:"s" sep:"," help:"Supported versions, newest first (overrides config)"`
	Verbose   bool     `short:"v" help:"Log operations to stderr"`
	JSON      bool     `help:"Print JSON output"`

	Pages     PagesCmd     `cmd:"" help:"List pages for a version and locale"`
	Locales   LocalesCmd   `cmd:"" help:"List locales found in the content tree"`
	Versions  VersionsCmd  `cmd:"" help:"List versions found in the content tree"`
	Catalog   CatalogCmd   `cmd:"" help:"Show locale metadata per version"`
	Reconcile ReconcileCmd `cmd:"" help:"Report translated files missing from the source locale"`
	Clean     CleanCmd     `cmd:"" help:"Delete translated files missing from the source locale"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Version string `help:"Version (default: latest supported)"`
	Locale  string `short:"l" help:"Locale (default: source locale)"`
}

// LocalesCmd is the "locales" subcommand.
type LocalesCmd struct{}

// VersionsCmd is the "versions" subcommand.
type VersionsCmd struct{}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct{}

// ReconcileCmd is the "reconcile" subcommand.
type ReconcileCmd struct {
	Version string `help:"Version to reconcile (default: every supported version present)"`
	Strict  bool   `help:"Fail when orphaned translations are found"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Version string `required:"" help:"Version to clean"`
	Force   bool   `help:"Confirm deletion"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
