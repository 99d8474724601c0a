package i18n

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config configures indexing, catalog and reconciliation of a content tree.
type Config struct {
	// ContentRoot is the directory holding <version>/<locale> subtrees.
	ContentRoot string `yaml:"contentRoot"`
	// ExtensionFilter is the case-sensitive file suffix to index.
	ExtensionFilter string `yaml:"extensionFilter"`
	// SourceLocale is the reconciliation baseline.
	SourceLocale string `yaml:"sourceLocale"`
	// DocDir is the per-locale subdirectory compared during reconciliation.
	DocDir string `yaml:"docDir"`
	// SupportedVersions is ordered newest first.
	SupportedVersions []string `yaml:"supportedVersions"`
	// PathSeparator joins segments of PageKey.RelativePath.
	PathSeparator string `yaml:"pathSeparator"`
	// LocaleOverrides corrects language names for specific codes.
	LocaleOverrides LocaleOverrides `yaml:"localeOverrides"`
}

// DefaultConfig returns a Config with every field except ContentRoot and
// SupportedVersions set to its default.
func DefaultConfig() Config {
	return Config{
		ExtensionFilter: ".md",
		SourceLocale:    SourceLocale,
		DocDir:          "doc",
		PathSeparator:   DefaultSeparator,
		LocaleOverrides: DefaultLocaleOverrides(),
	}
}

// Validate returns EINVALID if the configuration cannot be used.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.ContentRoot, validation.Required),
		validation.Field(&c.ExtensionFilter, validation.Required, validation.By(func(value any) error {
			if !strings.HasPrefix(value.(string), ".") {
				return validation.NewError("config.extension_filter.dot", "must start with a dot")
			}
			return nil
		})),
		validation.Field(&c.SourceLocale, validation.Required),
		validation.Field(&c.DocDir, validation.Required),
		validation.Field(&c.PathSeparator, validation.Required, validation.RuneLength(1, 1)),
		validation.Field(&c.SupportedVersions, validation.Required, validation.By(uniqueVersions)),
	)
	if err != nil {
		return Errorf(EINVALID, "invalid config: %s", err.Error())
	}
	return nil
}

func uniqueVersions(value any) error {
	seen := make(map[string]struct{})
	for _, v := range value.([]string) {
		if strings.TrimSpace(v) == "" {
			return validation.NewError("config.supported_versions.blank", "must not contain blank versions")
		}
		if !isDirName(v) {
			return validation.NewError("config.supported_versions.path", fmt.Sprintf("version %q must be a single directory name", v))
		}
		if _, ok := seen[v]; ok {
			return validation.NewError("config.supported_versions.duplicate", fmt.Sprintf("duplicate version %q", v))
		}
		seen[v] = struct{}{}
	}
	return nil
}
