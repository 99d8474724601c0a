package i18n

import (
	"context"
	"maps"
)

// Unknown is the placeholder for locale metadata that cannot be resolved.
const Unknown = "Unknown"

// LocaleInfo holds display metadata for a locale code.
type LocaleInfo struct {
	LanguageName       string `json:"languageName"`
	LanguageNativeName string `json:"languageNativeName"`
	CountryCode        string `json:"countryCode"`
	CountryName        string `json:"countryName"`
}

// LocaleEntry is a locale code with its resolved metadata.
type LocaleEntry struct {
	Code string `json:"locale"`
	LocaleInfo
}

// VersionCatalog lists the locales available for one version.
type VersionCatalog struct {
	Version string                  `json:"version"`
	Locales map[string]*LocaleEntry `json:"locales"`
}

// LocaleResolver resolves display metadata for a locale code.
type LocaleResolver interface {
	// Resolve never fails. Unknown subtags resolve to Unknown placeholders.
	Resolve(code string) LocaleInfo
}

// CatalogBuilder lists the locales present in a content tree per version.
type CatalogBuilder interface {
	// BuildCatalog returns one catalog per version directory, sorted by version.
	// Returns ENOTFOUND if the content root does not exist.
	BuildCatalog(ctx context.Context) ([]*VersionCatalog, error)
}

// LocaleOverrides maps locale codes to corrected language names.
type LocaleOverrides map[string]string

// DefaultLocaleOverrides returns corrections for codes whose generic
// language name is ambiguous.
func DefaultLocaleOverrides() LocaleOverrides {
	return LocaleOverrides{
		"zh-TW": "Chinese Traditional",
		"zh-CN": "Chinese Simplified",
		"en-CA": "English (Canada)",
	}
}

// Apply replaces the language name of entry if its code has an override.
// Matching is exact; unmatched entries are left untouched.
func (o LocaleOverrides) Apply(entry *LocaleEntry) {
	if name, ok := o[entry.Code]; ok {
		entry.LanguageName = name
	}
}

// Clone returns a copy of the overrides.
func (o LocaleOverrides) Clone() LocaleOverrides {
	if o == nil {
		return nil
	}
	return maps.Clone(o)
}
