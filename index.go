package i18n

import (
	"encoding/hex"
	"slices"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Index is an immutable, in-memory view of every discovered page.
// It is safe for concurrent readers.
type Index struct {
	pages             []*Page
	supportedVersions []string
	defaultLocale     string
}

// Option configures an Index.
type Option func(*Index)

// WithDefaultLocale sets the locale used when Pages is called without one.
// Defaults to SourceLocale if not specified.
func WithDefaultLocale(locale string) Option {
	return func(idx *Index) {
		idx.defaultLocale = locale
	}
}

// NewIndex creates an Index over pages. The first entry of
// supportedVersions is the latest version and the default for queries.
func NewIndex(pages []*Page, supportedVersions []string, opts ...Option) *Index {
	idx := &Index{
		pages:             clonePages(pages),
		supportedVersions: slices.Clone(supportedVersions),
		defaultLocale:     SourceLocale,
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Len returns the number of indexed pages.
func (idx *Index) Len() int {
	return len(idx.pages)
}

// SupportedVersions returns a copy of the supported versions list.
func (idx *Index) SupportedVersions() []string {
	return slices.Clone(idx.supportedVersions)
}

// Latest returns the first supported version, or "" if none are configured.
func (idx *Index) Latest() string {
	if len(idx.supportedVersions) == 0 {
		return ""
	}
	return idx.supportedVersions[0]
}

// Versions returns the distinct versions present in the index, sorted.
func (idx *Index) Versions() []string {
	return idx.distinct(func(p *Page) string { return p.Version })
}

// Locales returns the distinct, non-empty locales present in the index, sorted.
func (idx *Index) Locales() []string {
	return idx.distinct(func(p *Page) string { return p.Locale })
}

func (idx *Index) distinct(field func(*Page) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range idx.pages {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Pages returns the pages for version and locale in discovery order.
// An empty version selects Latest; an empty locale selects the default
// locale. Returns EVERSION if version is not supported, even when no
// page would match. The returned pages are copies.
func (idx *Index) Pages(version, locale string) ([]*Page, error) {
	if version == "" {
		version = idx.Latest()
	}
	if locale == "" {
		locale = idx.defaultLocale
	}

	if err := CheckVersion(version, idx.supportedVersions); err != nil {
		return nil, err
	}

	out := []*Page{}
	for _, p := range idx.pages {
		if p.Version == version && p.Locale == locale {
			out = append(out, p.clone())
		}
	}
	return out, nil
}

// All returns every indexed page in discovery order. Pages are copies, so
// callers cannot alter the index through them.
func (idx *Index) All() []*Page {
	return clonePages(idx.pages)
}

func clonePages(pages []*Page) []*Page {
	out := make([]*Page, len(pages))
	for i, p := range pages {
		out[i] = p.clone()
	}
	return out
}

// Fingerprint returns a hash of the sorted page keys. Two indexes built from
// trees with the same set of files share a fingerprint.
func (idx *Index) Fingerprint() string {
	keys := make([]string, 0, len(idx.pages))
	for _, p := range idx.pages {
		keys = append(keys, p.Path(DefaultSeparator))
	}
	sort.Strings(keys)

	h := xxhash.New()
	for _, k := range keys {
		_, _ = h.WriteString(k)
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// CheckVersion returns EVERSION unless version is one of supported and names
// a single directory, so that it is safe to join onto a content root.
func CheckVersion(version string, supported []string) error {
	if !isDirName(version) || !slices.Contains(supported, version) {
		return Errorf(EVERSION, "invalid major version: %q. Valid versions are %s",
			version, strings.Join(supported, ", "))
	}
	return nil
}

// isDirName reports whether name is a single path element other than . and ..
func isDirName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
