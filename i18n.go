// Package i18n indexes localized documentation stored on disk as
// content/<version>/<locale>/doc/**/*.md. It builds an in-memory page
// index keyed by version, locale and relative path, resolves display
// metadata for discovered locales, and reconciles translated trees
// against the source locale to find orphaned translations.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, xtext/, yaml/).
package i18n

// SourceLocale is the authoritative locale all translations derive from.
const SourceLocale = "en-US"
