// Package config loads the .svckit.yaml project configuration.
//
// When the file is absent, svckit falls back to the conventional
// layout: services.json at the root, per-locale translations under
// locales/<code>/services.json with "en" as the base locale, and the
// combined output under i18n/.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file name.
const FileName = ".svckit.yaml"

// Config describes one project's dataset layout.
type Config struct {
	// Sources is the ordered list of service list inputs for the merge
	// step. Later sources win per service ID.
	Sources []string `yaml:"sources,omitempty"`
	// ServicesFile is the merged {blocked_services, groups} output.
	ServicesFile string `yaml:"services_file,omitempty"`
	// LocalesDir holds one subdirectory per locale code.
	LocalesDir string `yaml:"locales_dir,omitempty"`
	// BaseLocale is the reference locale kept complete against the
	// group set.
	BaseLocale string `yaml:"base_locale,omitempty"`
	// I18NFile is the combined localization output.
	I18NFile string `yaml:"i18n_file,omitempty"`
}

// Defaults returns the conventional layout.
func Defaults() *Config {
	return &Config{
		ServicesFile: "services.json",
		LocalesDir:   "locales",
		BaseLocale:   "en",
		I18NFile:     filepath.Join("i18n", "servicesgroups.json"),
	}
}

// Load reads .svckit.yaml from rootDir. A missing file yields the pure
// defaults; a present file has defaults applied to the fields it leaves
// out. BaseLocale must parse as a language tag.
func Load(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	def := Defaults()
	if cfg.ServicesFile == "" {
		cfg.ServicesFile = def.ServicesFile
	}
	if cfg.LocalesDir == "" {
		cfg.LocalesDir = def.LocalesDir
	}
	if cfg.BaseLocale == "" {
		cfg.BaseLocale = def.BaseLocale
	}
	if cfg.I18NFile == "" {
		cfg.I18NFile = def.I18NFile
	}

	if _, err := language.Parse(cfg.BaseLocale); err != nil {
		return nil, fmt.Errorf("%s: base_locale %q is not a language tag: %w", path, cfg.BaseLocale, err)
	}

	return &cfg, nil
}

// Resolve returns a copy with every relative path joined onto rootDir.
func (c *Config) Resolve(rootDir string) *Config {
	out := *c
	out.ServicesFile = resolvePath(rootDir, c.ServicesFile)
	out.LocalesDir = resolvePath(rootDir, c.LocalesDir)
	out.I18NFile = resolvePath(rootDir, c.I18NFile)
	out.Sources = make([]string, len(c.Sources))
	for i, src := range c.Sources {
		out.Sources[i] = resolvePath(rootDir, src)
	}
	return &out
}

func resolvePath(rootDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}
