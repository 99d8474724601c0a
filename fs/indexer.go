package fs

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nodejs/i18n"
)

// Ensure Indexer implements i18n.Indexer at compile time.
var _ i18n.Indexer = (*Indexer)(nil)

// Indexer walks a content root and turns every matching file into a page.
type Indexer struct {
	root      string
	ext       string
	separator string
	logger    *slog.Logger
}

// NewIndexer creates an Indexer for the content tree described by cfg.
// A nil logger discards skipped-file warnings.
func NewIndexer(cfg i18n.Config, logger *slog.Logger) *Indexer {
	sep := cfg.PathSeparator
	if sep == "" {
		sep = i18n.DefaultSeparator
	}
	return &Indexer{
		root:      cfg.ContentRoot,
		ext:       cfg.ExtensionFilter,
		separator: sep,
		logger:    orDiscard(logger),
	}
}

// Index walks the content root. Files whose path does not decompose into
// version/locale/path are logged and left out.
func (ix *Indexer) Index(ctx context.Context) ([]*i18n.Page, error) {
	entries, err := Walk(ctx, ix.root, ix.ext, ix.logger)
	if err != nil {
		return nil, err
	}

	pages := make([]*i18n.Page, 0, len(entries))
	for _, e := range entries {
		rel := e.RelativePath
		if ix.separator != "/" {
			rel = strings.ReplaceAll(rel, "/", ix.separator)
		}

		key, err := i18n.ParsePageKey(rel, ix.separator)
		if err != nil {
			ix.logger.Warn("skipping file outside version/locale layout",
				"path", e.AbsolutePath,
				"err", i18n.ErrorMessage(err),
			)
			continue
		}
		pages = append(pages, &i18n.Page{
			PageKey:  key,
			FullPath: e.AbsolutePath,
		})
	}
	return pages, nil
}

// BuildIndex indexes cfg.ContentRoot and returns the resulting Index.
func BuildIndex(ctx context.Context, cfg i18n.Config, logger *slog.Logger) (*i18n.Index, error) {
	return i18n.BuildIndex(ctx, NewIndexer(cfg, logger), cfg)
}
