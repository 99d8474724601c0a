// Package xtext resolves locale display metadata using golang.org/x/text.
package xtext

import (
	"strings"

	"github.com/nodejs/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Ensure Resolver implements i18n.LocaleResolver at compile time.
var _ i18n.LocaleResolver = (*Resolver)(nil)

// Resolver names locale codes of the form language[-COUNTRY] using CLDR data.
// Language and country names are in English; the native name is in the
// language itself.
type Resolver struct {
	languages display.Namer
	regions   display.Namer
}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{
		languages: display.English.Languages(),
		regions:   display.English.Regions(),
	}
}

// Resolve returns metadata for code. Subtags that cannot be parsed or named
// resolve to i18n.Unknown.
func (r *Resolver) Resolve(code string) i18n.LocaleInfo {
	lang, country, hasCountry := splitCode(code)

	info := i18n.LocaleInfo{
		LanguageName:       i18n.Unknown,
		LanguageNativeName: i18n.Unknown,
	}

	if base, err := language.ParseBase(lang); err == nil {
		info.LanguageName = orUnknown(r.languages.Name(base))
		info.LanguageNativeName = orUnknown(display.Self.Name(language.Make(base.String())))
	}

	if hasCountry {
		info.CountryCode = strings.ToUpper(country)
		info.CountryName = i18n.Unknown
		if region, err := language.ParseRegion(country); err == nil {
			info.CountryCode = region.String()
			info.CountryName = orUnknown(r.regions.Name(region))
		}
	}

	return info
}

// splitCode splits "es-ES" or "es_ES" into its language and country parts.
func splitCode(code string) (lang, country string, hasCountry bool) {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	lang, country, hasCountry = strings.Cut(code, "-")
	return lang, country, hasCountry && country != ""
}

func orUnknown(name string) string {
	if name == "" {
		return i18n.Unknown
	}
	return name
}
