package i18n

import (
	"context"
	"strings"
)

// DefaultSeparator separates path segments in relative page paths.
const DefaultSeparator = "/"

// PageKey identifies a page within the content tree.
type PageKey struct {
	Version      string `json:"version"`
	Locale       string `json:"locale"`
	RelativePath string `json:"relativePath"`
}

// ParsePageKey splits a content-root relative path of the form
// version/locale/rest... into a PageKey. The remaining segments are rejoined
// with sep. Returns EMALFORMED if there is no room for a non-empty
// relative path.
func ParsePageKey(rel, sep string) (PageKey, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	segments := strings.Split(rel, sep)
	if len(segments) < 3 {
		return PageKey{}, Errorf(EMALFORMED, "path %q does not match version%slocale%spath", rel, sep, sep)
	}
	rest := strings.Join(segments[2:], sep)
	if rest == "" {
		return PageKey{}, Errorf(EMALFORMED, "path %q has an empty relative path", rel)
	}
	return PageKey{
		Version:      segments[0],
		Locale:       segments[1],
		RelativePath: rest,
	}, nil
}

// Path rebuilds the content-root relative path of the key.
// Path(sep) is the inverse of ParsePageKey(_, sep).
func (k PageKey) Path(sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	return k.Version + sep + k.Locale + sep + k.RelativePath
}

// Page represents one indexed documentation file.
type Page struct {
	PageKey
	FullPath string `json:"fullPath"`
}

func (p *Page) clone() *Page {
	cp := *p
	return &cp
}

// Slug returns the file name of the page without its extension.
func (p *Page) Slug() string {
	segments := splitSegments(p.RelativePath)
	if len(segments) == 0 {
		return ""
	}
	name := segments[len(segments)-1]
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return name
}

// Category returns the directories between the top-level doc directory and
// the file, joined with DefaultSeparator. For doc/api/fs.md it is "api".
func (p *Page) Category() string {
	segments := splitSegments(p.RelativePath)
	if len(segments) < 3 {
		return ""
	}
	return strings.Join(segments[1:len(segments)-1], DefaultSeparator)
}

// Slug and Category accept both slash styles.
func splitSegments(rel string) []string {
	return strings.FieldsFunc(rel, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

// Indexer discovers pages in a content tree.
// Implementations return the full, materialized result.
type Indexer interface {
	// Index walks the content root and returns every page found.
	// Returns ENOTFOUND if the content root does not exist.
	Index(ctx context.Context) ([]*Page, error)
}
