package i18n

import (
	"context"
	"sync"
)

// BuildIndex indexes the content tree described by cfg and wraps the result
// in an Index. Returns EINVALID if cfg does not validate.
func BuildIndex(ctx context.Context, indexer Indexer, cfg Config) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pages, err := indexer.Index(ctx)
	if err != nil {
		return nil, err
	}
	return NewIndex(pages, cfg.SupportedVersions, WithDefaultLocale(cfg.SourceLocale)), nil
}

// Library holds the current Index of a content tree and rebuilds it on
// request. Readers always see a complete snapshot.
type Library struct {
	indexer Indexer
	cfg     Config

	mu    sync.RWMutex
	index *Index
}

// NewLibrary creates a Library. Call Rebuild before the first Index call.
func NewLibrary(indexer Indexer, cfg Config) *Library {
	return &Library{
		indexer: indexer,
		cfg:     cfg,
		index:   NewIndex(nil, cfg.SupportedVersions, WithDefaultLocale(cfg.SourceLocale)),
	}
}

// Index returns the current snapshot.
func (l *Library) Index() *Index {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index
}

// Rebuild re-indexes the content tree and swaps in the new snapshot.
// It reports whether the set of pages changed. On error the previous
// snapshot is kept.
func (l *Library) Rebuild(ctx context.Context) (changed bool, err error) {
	next, err := BuildIndex(ctx, l.indexer, l.cfg)
	if err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	changed = l.index.Fingerprint() != next.Fingerprint()
	l.index = next
	return changed, nil
}
