package mock

import (
	"context"

	"github.com/nodejs/i18n"
)

var _ i18n.Indexer = (*Indexer)(nil)

// Indexer is a mock implementation of i18n.Indexer.
type Indexer struct {
	IndexFn func(ctx context.Context) ([]*i18n.Page, error)
}

func (ix *Indexer) Index(ctx context.Context) ([]*i18n.Page, error) {
	return ix.IndexFn(ctx)
}
