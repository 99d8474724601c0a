package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/nodejs/i18n"
	"github.com/nodejs/i18n/fs"
	i18nslog "github.com/nodejs/i18n/slog"
	"github.com/nodejs/i18n/xtext"
	"github.com/nodejs/i18n/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Resolver names locale codes for the catalog command.
	Resolver i18n.LocaleResolver
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Resolver: xtext.NewResolver(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nodedocs"),
		kong.Description("Index and reconcile localized documentation content"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nodedocs --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.config()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", i18n.ErrorMessage(err))
		return err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", i18n.ErrorMessage(err))
		fmt.Fprintln(stderr, "Hint: Set --content and --supported, or point --config at a YAML file")
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		JSON:   cli.JSON,
	}

	// Wire command-specific dependencies based on command
	switch cmd := strings.Fields(kongCtx.Command())[0]; cmd {
	case "pages", "locales", "versions":
		indexer := i18nslog.NewLoggingIndexer(fs.NewIndexer(cfg, logger), logger)
		deps.Library = i18n.NewLibrary(indexer, cfg)
		if _, err := deps.Library.Rebuild(ctx); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", i18n.ErrorMessage(err))
			return err
		}
	case "catalog":
		deps.Catalogs = i18nslog.NewLoggingCatalogBuilder(fs.NewCatalogBuilder(cfg, m.Resolver, logger), logger)
	case "reconcile", "clean":
		deps.Reconciler = i18nslog.NewLoggingReconciler(fs.NewReconciler(cfg, logger), logger)
	}

	return kongCtx.Run(deps)
}

// config builds the configuration from the optional YAML file and flags.
// Flags take precedence over file values. The content root defaults to
// ./content when neither sets it.
func (c *CLI) config() (i18n.Config, error) {
	cfg := i18n.DefaultConfig()
	if c.Config != "" {
		var err error
		if cfg, err = yaml.LoadConfig(c.Config); err != nil {
			return i18n.Config{}, err
		}
	}

	if c.Content != "" {
		cfg.ContentRoot = c.Content
	}
	if cfg.ContentRoot == "" {
		cfg.ContentRoot = "content"
	}
	if len(c.Supported) > 0 {
		cfg.SupportedVersions = c.Supported
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
