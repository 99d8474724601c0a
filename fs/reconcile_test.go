package fs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/nodejs/i18n"
	"github.com/nodejs/i18n/fs"
	"github.com/nodejs/i18n/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Reconciling translations
// Every translated file must correspond to a file in the source locale.

func TestReconciler_Reconcile(t *testing.T) {
	t.Parallel()

	t.Run("reports translated files missing from source", func(t *testing.T) {
		t.Parallel()

		// Given a source locale and a translation with an extra file
		root := t.TempDir()
		writeTree(t, root,
			"v12.x/en-US/doc/a.md",
			"v12.x/en-US/doc/b/c.md",
			"v12.x/fr-FR/doc/a.md",
			"v12.x/fr-FR/doc/b/c.md",
			"v12.x/fr-FR/doc/orphan.md",
		)

		// When I reconcile
		reports, err := fs.NewReconciler(testConfig(root), nil).Reconcile(context.Background(), "v12.x")

		// Then only the orphan is reported
		require.NoError(t, err)
		require.Len(t, reports, 1)
		require.Contains(t, reports, "fr-FR")
		assert.Equal(t, []string{"orphan.md"}, reports["fr-FR"].Orphans)
		assert.Equal(t, "v12.x", reports["fr-FR"].Version)
		assert.False(t, reports["fr-FR"].Empty())
	})

	t.Run("does not report untranslated source files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root,
			"v12.x/en-US/doc/a.md",
			"v12.x/en-US/doc/b.md",
			"v12.x/es-ES/doc/a.md",
		)

		reports, err := fs.NewReconciler(testConfig(root), nil).Reconcile(context.Background(), "v12.x")

		require.NoError(t, err)
		assert.True(t, reports["es-ES"].Empty())
		assert.NotNil(t, reports["es-ES"].Orphans)
	})

	t.Run("treats missing source locale as empty", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, "v12.x/de-DE/doc/b.md", "v12.x/de-DE/doc/a.md")

		reports, err := fs.NewReconciler(testConfig(root), nil).Reconcile(context.Background(), "v12.x")

		require.NoError(t, err)
		assert.Equal(t, []string{"a.md", "b.md"}, reports["de-DE"].Orphans)
	})

	t.Run("compares only the doc subtree", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root,
			"v12.x/en-US/doc/a.md",
			"v12.x/ja-JP/doc/a.md",
			"v12.x/ja-JP/notes.md",
		)

		reports, err := fs.NewReconciler(testConfig(root), nil).Reconcile(context.Background(), "v12.x")

		require.NoError(t, err)
		assert.True(t, reports["ja-JP"].Empty())
	})

	t.Run("reports every translated locale", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root,
			"v12.x/en-US/doc/a.md",
			"v12.x/es-ES/doc/a.md",
			"v12.x/ko-KR/doc/x.md",
		)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "v12.x", "it-IT"), 0755))

		reports, err := fs.NewReconciler(testConfig(root), nil).Reconcile(context.Background(), "v12.x")

		require.NoError(t, err)
		assert.Len(t, reports, 3)
		assert.True(t, reports["it-IT"].Empty())
		assert.Equal(t, []string{"x.md"}, reports["ko-KR"].Orphans)
	})

	t.Run("returns ENOTFOUND for missing version", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewReconciler(testConfig(t.TempDir()), nil).Reconcile(context.Background(), "v12.x")

		assert.Equal(t, i18n.ENOTFOUND, i18n.ErrorCode(err))
	})
}

func TestReconciler_Clean(t *testing.T) {
	t.Parallel()

	t.Run("removes exactly the orphans", func(t *testing.T) {
		t.Parallel()

		// Given a translation with one orphan
		root := t.TempDir()
		writeTree(t, root,
			"v12.x/en-US/doc/a.md",
			"v12.x/en-US/doc/b/c.md",
			"v12.x/fr-FR/doc/a.md",
			"v12.x/fr-FR/doc/b/c.md",
			"v12.x/fr-FR/doc/orphan.md",
		)
		r := fs.NewReconciler(testConfig(root), nil)

		// When I clean
		result, err := r.Clean(context.Background(), "v12.x")

		// Then the orphan is deleted
		require.NoError(t, err)
		orphan := filepath.Join(root, "v12.x", "fr-FR", "doc", "orphan.md")
		assert.Equal(t, []string{orphan}, result.Deleted)
		assert.Empty(t, result.Failures)
		_, err = os.Stat(orphan)
		assert.True(t, os.IsNotExist(err))

		// And the translated counterparts of source files remain
		for _, p := range []string{"v12.x/fr-FR/doc/a.md", "v12.x/fr-FR/doc/b/c.md", "v12.x/en-US/doc/a.md"} {
			_, err := os.Stat(filepath.Join(root, filepath.FromSlash(p)))
			assert.NoError(t, err, p)
		}

		// And cleaning again deletes nothing
		result, err = r.Clean(context.Background(), "v12.x")
		require.NoError(t, err)
		assert.Empty(t, result.Deleted)
	})

	t.Run("continues after a failed deletion", func(t *testing.T) {
		t.Parallel()
		if os.Geteuid() == 0 {
			t.Skip("permissions are not enforced for root")
		}

		// Given orphans in two locales, one of which is read-only
		root := t.TempDir()
		writeTree(t, root,
			"v12.x/en-US/doc/a.md",
			"v12.x/de-DE/doc/orphan.md",
			"v12.x/fr-FR/doc/orphan.md",
		)
		locked := filepath.Join(root, "v12.x", "de-DE", "doc")
		require.NoError(t, os.Chmod(locked, 0555))
		t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		result, err := fs.NewReconciler(testConfig(root), logger).Clean(context.Background(), "v12.x")

		// Then the other locale is still cleaned
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(root, "v12.x", "fr-FR", "doc", "orphan.md")}, result.Deleted)
		require.Len(t, result.Failures, 1)
		assert.Equal(t, filepath.Join(locked, "orphan.md"), result.Failures[0].Path)
		assert.Equal(t, i18n.EDELETE, i18n.ErrorCode(result.Failures[0].Err))
		assert.Contains(t, buf.String(), "failed to delete orphaned translation")
	})

	t.Run("returns ENOTFOUND for missing version", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewReconciler(testConfig(t.TempDir()), nil).Clean(context.Background(), "v10.x")

		assert.Equal(t, i18n.ENOTFOUND, i18n.ErrorCode(err))
	})
}

func TestReconcileVersions(t *testing.T) {
	t.Parallel()

	t.Run("reconciles each version", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root,
			"v12.x/en-US/doc/a.md",
			"v12.x/es-ES/doc/x.md",
			"v10.x/en-US/doc/a.md",
			"v10.x/es-ES/doc/a.md",
		)

		results, err := fs.ReconcileVersions(context.Background(), fs.NewReconciler(testConfig(root), nil), []string{"v12.x", "v10.x"})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, []string{"x.md"}, results["v12.x"]["es-ES"].Orphans)
		assert.True(t, results["v10.x"]["es-ES"].Empty())
	})

	t.Run("returns first error", func(t *testing.T) {
		t.Parallel()

		r := &mock.Reconciler{
			ReconcileFn: func(ctx context.Context, version string) (map[string]*i18n.ReconciliationReport, error) {
				if version == "v10.x" {
					return nil, errors.New("boom")
				}
				return map[string]*i18n.ReconciliationReport{}, nil
			},
		}

		_, err := fs.ReconcileVersions(context.Background(), r, []string{"v12.x", "v10.x"})

		assert.EqualError(t, err, "boom")
	})
}

func TestReconciler_RejectsUnsupportedVersions(t *testing.T) {
	t.Parallel()

	t.Run("does not clean outside the content root", func(t *testing.T) {
		t.Parallel()

		// Given a content root with a sibling tree shaped like a version
		base := t.TempDir()
		content := filepath.Join(base, "content")
		writeTree(t, base,
			"content/v12.x/en-US/doc/a.md",
			"other/en-US/doc/a.md",
			"other/fr-FR/doc/secret.md",
		)
		r := fs.NewReconciler(testConfig(content), nil)

		// When I clean a version that climbs out of the root
		_, err := r.Clean(context.Background(), "../other")

		// Then it is rejected and the sibling is untouched
		assert.Equal(t, i18n.EVERSION, i18n.ErrorCode(err))
		_, err = os.Stat(filepath.Join(base, "other", "fr-FR", "doc", "secret.md"))
		assert.NoError(t, err)

		_, err = r.Reconcile(context.Background(), "../other")
		assert.Equal(t, i18n.EVERSION, i18n.ErrorCode(err))
	})

	t.Run("rejects versions present on disk but not supported", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, "v8.x/en-US/doc/a.md", "v8.x/fr-FR/doc/orphan.md")
		r := fs.NewReconciler(testConfig(root), nil)

		_, err := r.Reconcile(context.Background(), "v8.x")
		assert.Equal(t, i18n.EVERSION, i18n.ErrorCode(err))

		_, err = r.Clean(context.Background(), "v8.x")
		assert.Equal(t, i18n.EVERSION, i18n.ErrorCode(err))
		_, err = os.Stat(filepath.Join(root, "v8.x", "fr-FR", "doc", "orphan.md"))
		assert.NoError(t, err)
	})
}

func TestReconciler_SkipsUnreadableLocale(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	// Given two translated locales, one of which cannot be read
	root := t.TempDir()
	writeTree(t, root,
		"v12.x/en-US/doc/a.md",
		"v12.x/de-DE/doc/orphan.md",
		"v12.x/fr-FR/doc/orphan.md",
	)
	locked := filepath.Join(root, "v12.x", "de-DE", "doc")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := fs.NewReconciler(testConfig(root), logger)

	// When I reconcile and clean
	reports, err := r.Reconcile(context.Background(), "v12.x")
	require.NoError(t, err)
	result, err := r.Clean(context.Background(), "v12.x")
	require.NoError(t, err)

	// Then the readable locale is still handled
	assert.NotContains(t, reports, "de-DE")
	assert.Equal(t, []string{"orphan.md"}, reports["fr-FR"].Orphans)
	assert.Equal(t, []string{filepath.Join(root, "v12.x", "fr-FR", "doc", "orphan.md")}, result.Deleted)
	assert.Contains(t, buf.String(), "skipping unreadable locale")
}
