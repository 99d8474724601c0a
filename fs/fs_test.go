package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nodejs/i18n"
	"github.com/stretchr/testify/require"
)

// writeTree creates each slash-separated path under root with placeholder content.
func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("# "+p+"\n"), 0644))
	}
}

func testConfig(root string) i18n.Config {
	cfg := i18n.DefaultConfig()
	cfg.ContentRoot = root
	cfg.SupportedVersions = []string{"v12.x", "v10.x"}
	return cfg
}
