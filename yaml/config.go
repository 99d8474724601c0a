// Package yaml loads i18n configuration from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/nodejs/i18n"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors i18n.Config with optional fields so that only keys
// present in the file replace defaults.
type fileConfig struct {
	ContentRoot       *string           `yaml:"contentRoot"`
	ExtensionFilter   *string           `yaml:"extensionFilter"`
	SourceLocale      *string           `yaml:"sourceLocale"`
	DocDir            *string           `yaml:"docDir"`
	SupportedVersions []string          `yaml:"supportedVersions"`
	PathSeparator     *string           `yaml:"pathSeparator"`
	LocaleOverrides   map[string]string `yaml:"localeOverrides"`
}

// LoadConfig reads the YAML file at path on top of i18n.DefaultConfig.
// A relative contentRoot is resolved against the file's directory.
// Locale overrides in the file are merged into the default table.
func LoadConfig(path string) (i18n.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return i18n.Config{}, i18n.Errorf(i18n.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return i18n.Config{}, err
	}

	cfg, err := ParseConfig(bytes.NewReader(data))
	if err != nil {
		return i18n.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.ContentRoot != "" && !filepath.IsAbs(cfg.ContentRoot) {
		cfg.ContentRoot = filepath.Join(filepath.Dir(path), cfg.ContentRoot)
	}
	return cfg, nil
}

// ParseConfig decodes YAML from r on top of i18n.DefaultConfig.
// It does not validate the result.
func ParseConfig(r io.Reader) (i18n.Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return i18n.Config{}, i18n.Errorf(i18n.EINVALID, "parse config: %v", err)
	}

	cfg := i18n.DefaultConfig()
	setString(&cfg.ContentRoot, fc.ContentRoot)
	setString(&cfg.ExtensionFilter, fc.ExtensionFilter)
	setString(&cfg.SourceLocale, fc.SourceLocale)
	setString(&cfg.DocDir, fc.DocDir)
	setString(&cfg.PathSeparator, fc.PathSeparator)
	if fc.SupportedVersions != nil {
		cfg.SupportedVersions = fc.SupportedVersions
	}
	for code, name := range fc.LocaleOverrides {
		cfg.LocaleOverrides[code] = name
	}
	return cfg, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
