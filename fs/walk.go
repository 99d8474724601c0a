// Package fs provides filesystem implementations of the i18n content
// services: walking, indexing, locale catalogs and reconciliation.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nodejs/i18n"
)

// Entry is a file discovered by Walk.
type Entry struct {
	// AbsolutePath is the root-joined path of the file.
	AbsolutePath string
	// RelativePath is relative to the walk root, slash separated.
	RelativePath string
}

// Walk returns every regular file under root whose name ends with ext.
// Entries are ordered lexically by directory, so repeated walks of an
// unchanged tree return the same sequence. An empty ext matches every file.
//
// Symbolic links are followed, including a root that is itself a link.
// Entry paths are reported below root as given, not below the link targets.
// A link that leads back into a directory being walked is logged and skipped.
//
// Returns ENOTFOUND if root does not exist. Subtrees that cannot be read
// are logged and skipped.
func Walk(ctx context.Context, root, ext string, logger *slog.Logger) ([]Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := requireDir(abs); err != nil {
		return nil, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}

	w := &walker{
		ctx:    ctx,
		root:   abs,
		ext:    ext,
		logger: orDiscard(logger),
	}
	if err := w.walk(resolved, ""); err != nil {
		return nil, err
	}
	return w.entries, nil
}

type walker struct {
	ctx     context.Context
	root    string
	ext     string
	logger  *slog.Logger
	parents []string // real directories holding the links being followed
	entries []Entry
}

// walk visits the real directory dir, whose files are reported under the
// slash-separated prefix relative to the walk root.
func (w *walker) walk(dir, prefix string) error {
	return filepath.WalkDir(dir, func(path string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == dir && prefix == "" {
				return walkErr
			}
			w.logger.Warn("skipping unreadable path", "path", w.display(dir, path, prefix), "err", walkErr)
			if d == nil || d.IsDir() {
				return iofs.SkipDir
			}
			return nil
		}

		if err := w.ctx.Err(); err != nil {
			return err
		}

		if d.Type()&iofs.ModeSymlink != 0 {
			return w.follow(dir, path, prefix, d.Name())
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), w.ext) {
			return nil
		}
		return w.add(dir, path, prefix)
	})
}

// follow handles a symbolic link found at path inside dir.
func (w *walker) follow(dir, path, prefix, name string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		w.logger.Warn("skipping unreadable path", "path", w.display(dir, path, prefix), "err", err)
		return nil
	}
	info, err := os.Stat(target)
	if err != nil {
		w.logger.Warn("skipping unreadable path", "path", w.display(dir, path, prefix), "err", err)
		return nil
	}

	switch {
	case info.IsDir():
		parent := filepath.Dir(path)
		if w.cycles(target, parent) {
			w.logger.Warn("skipping symlink cycle", "path", w.display(dir, path, prefix), "target", target)
			return nil
		}
		rel, err := w.rel(dir, path, prefix)
		if err != nil {
			return err
		}
		w.parents = append(w.parents, parent)
		defer func() { w.parents = w.parents[:len(w.parents)-1] }()
		return w.walk(target, rel)
	case info.Mode().IsRegular() && strings.HasSuffix(name, w.ext):
		return w.add(dir, path, prefix)
	}
	return nil
}

// cycles reports whether following a link in parent to target would
// re-enter a directory that is already being walked.
func (w *walker) cycles(target, parent string) bool {
	if contains(target, parent) {
		return true
	}
	for _, p := range w.parents {
		if contains(target, p) {
			return true
		}
	}
	return false
}

// contains reports whether path is dir or lies below it.
func contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (w *walker) add(dir, path, prefix string) error {
	rel, err := w.rel(dir, path, prefix)
	if err != nil {
		return err
	}
	w.entries = append(w.entries, Entry{
		AbsolutePath: filepath.Join(w.root, filepath.FromSlash(rel)),
		RelativePath: rel,
	})
	return nil
}

// rel returns the slash-separated path of path relative to the walk root.
func (w *walker) rel(dir, path, prefix string) (string, error) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(filepath.FromSlash(prefix), rel)), nil
}

func (w *walker) display(dir, path, prefix string) string {
	rel, err := w.rel(dir, path, prefix)
	if err != nil {
		return path
	}
	return filepath.Join(w.root, filepath.FromSlash(rel))
}

// requireDir returns ENOTFOUND unless dir exists and is a directory.
func requireDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return i18n.Errorf(i18n.ENOTFOUND, "directory %q not found", dir)
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return i18n.Errorf(i18n.ENOTFOUND, "%q is not a directory", dir)
	}
	return nil
}

// subdirs returns the names of the directories directly inside dir, sorted.
// Symbolic links to directories are followed.
func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			if e.Type()&iofs.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil || !info.IsDir() {
				continue
			}
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
