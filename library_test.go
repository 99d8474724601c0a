package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nodejs/i18n"
	"github.com/nodejs/i18n/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	t.Run("wraps indexed pages with configured versions", func(t *testing.T) {
		t.Parallel()

		indexer := &mock.Indexer{
			IndexFn: func(ctx context.Context) ([]*i18n.Page, error) {
				return []*i18n.Page{newPage("v12.x", "en-US", "doc/a.md")}, nil
			},
		}

		idx, err := i18n.BuildIndex(context.Background(), indexer, validConfig())

		require.NoError(t, err)
		assert.Equal(t, 1, idx.Len())
		assert.Equal(t, "v12.x", idx.Latest())
	})

	t.Run("rejects invalid config before indexing", func(t *testing.T) {
		t.Parallel()

		called := false
		indexer := &mock.Indexer{
			IndexFn: func(ctx context.Context) ([]*i18n.Page, error) {
				called = true
				return nil, nil
			},
		}

		_, err := i18n.BuildIndex(context.Background(), indexer, i18n.DefaultConfig())

		assert.Equal(t, i18n.EINVALID, i18n.ErrorCode(err))
		assert.False(t, called)
	})

	t.Run("returns indexer error", func(t *testing.T) {
		t.Parallel()

		indexer := &mock.Indexer{
			IndexFn: func(ctx context.Context) ([]*i18n.Page, error) {
				return nil, i18n.Errorf(i18n.ENOTFOUND, "content root not found")
			},
		}

		_, err := i18n.BuildIndex(context.Background(), indexer, validConfig())

		assert.Equal(t, i18n.ENOTFOUND, i18n.ErrorCode(err))
	})
}

func TestLibrary_Rebuild(t *testing.T) {
	t.Parallel()

	// Given an indexer whose tree grows between calls
	pages := []*i18n.Page{newPage("v12.x", "en-US", "doc/a.md")}
	var fail bool
	indexer := &mock.Indexer{
		IndexFn: func(ctx context.Context) ([]*i18n.Page, error) {
			if fail {
				return nil, errors.New("disk gone")
			}
			return pages, nil
		},
	}
	lib := i18n.NewLibrary(indexer, validConfig())
	assert.Equal(t, 0, lib.Index().Len())

	// When I rebuild for the first time
	changed, err := lib.Rebuild(context.Background())

	// Then the snapshot changes
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, lib.Index().Len())

	// And rebuilding an unchanged tree reports no change
	changed, err = lib.Rebuild(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)

	// And adding a page reports a change
	pages = append(pages, newPage("v12.x", "en-US", "doc/b.md"))
	changed, err = lib.Rebuild(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 2, lib.Index().Len())

	// And a failed rebuild keeps the previous snapshot
	fail = true
	_, err = lib.Rebuild(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, lib.Index().Len())
}
