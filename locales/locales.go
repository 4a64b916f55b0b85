// Package locales walks the per-locale translation directories,
// aggregates them into the combined services-group localization
// structure, keeps the base locale complete, and writes the i18n
// output file.
//
// Layout on disk:
//
//	locales/
//	    en/services.json    <- base locale, kept in sync with the group set
//	    es/services.json
//	    pt-BR/services.json
package locales

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/netshield/svckit/logging"
	"github.com/netshield/svckit/services"
	"github.com/netshield/svckit/transfile"
)

// ServicesFileName is the per-locale translation file name.
const ServicesFileName = "services.json"

// Builder runs the localization pipeline for one project layout.
type Builder struct {
	// LocalesDir contains one subdirectory per locale code.
	LocalesDir string
	// BaseLocale is the reference locale kept complete against the
	// group set (usually "en").
	BaseLocale string
	// ServicesFile is the combined services file carrying the group
	// list.
	ServicesFile string
	// OutputFile is the combined i18n file to write.
	OutputFile string

	Log logging.Logger
}

// Locales returns the locale codes found under LocalesDir, sorted.
// Subdirectory names that do not parse as language tags are skipped
// with a warning.
func (b *Builder) Locales() ([]string, error) {
	entries, err := os.ReadDir(b.LocalesDir)
	if err != nil {
		return nil, fmt.Errorf("listing locales in %s: %w", b.LocalesDir, err)
	}

	var codes []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, err := language.Parse(name); err != nil {
			b.Log.Warning("skipping %s: %q is not a language tag", filepath.Join(b.LocalesDir, name), name)
			continue
		}
		codes = append(codes, name)
	}

	sort.Strings(codes)
	return codes, nil
}

// Aggregate merges every locale's services translation file into one
// structure keyed by group id then locale. Locale directories without a
// services file are skipped; malformed keys inside a file are reported
// via a warning and the valid remainder is kept.
func (b *Builder) Aggregate() (transfile.GroupTranslations, error) {
	codes, err := b.Locales()
	if err != nil {
		return nil, err
	}

	merged := make(transfile.GroupTranslations)
	for _, locale := range codes {
		path := filepath.Join(b.LocalesDir, locale, ServicesFileName)
		list, err := transfile.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}

		parsed, invalid := transfile.ParseLocale(list, locale)
		if len(invalid) > 0 {
			b.Log.Warning("locale %s: invalid translation keys: %s", locale, strings.Join(invalid, ", "))
		}
		merged.Merge(parsed)
	}

	return merged, nil
}

// EnsureBaseLocale cross-references the group set against the base
// locale translation file and fills in TODO placeholders for missing
// groups, rewriting the file sorted by key. Failures here are logged
// and swallowed: an incomplete base file must not break the build.
func (b *Builder) EnsureBaseLocale() {
	if err := b.ensureBaseLocale(); err != nil {
		b.Log.Error("checking %s translations: %v", b.BaseLocale, err)
	}
}

func (b *Builder) ensureBaseLocale() error {
	svc, err := services.ReadFile(b.ServicesFile)
	if err != nil {
		return err
	}

	basePath := filepath.Join(b.LocalesDir, b.BaseLocale, ServicesFileName)
	list, err := transfile.ReadFile(basePath)
	if err != nil {
		return err
	}

	present := make(map[string]bool, len(list))
	for _, entry := range list {
		present[entry.FirstKey()] = true
	}

	var added []string
	for _, id := range svc.GroupIDs() {
		if !present[transfile.NameKey(id)] {
			list = append(list, transfile.Placeholder(id))
			added = append(added, id)
		}
	}
	if len(added) == 0 {
		return nil
	}

	if err := transfile.WriteFile(basePath, list); err != nil {
		return err
	}
	b.Log.Warning("added %d placeholder translation(s) to %s for: %s; replace the TODO values with real names",
		len(added), basePath, strings.Join(added, ", "))
	return nil
}

// Build runs the whole pipeline: base-locale completeness, aggregation
// across locales, validation, and the combined file write. This is the
// only fatal path; every failure is wrapped and returned.
func (b *Builder) Build() error {
	b.EnsureBaseLocale()

	merged, err := b.Aggregate()
	if err != nil {
		return fmt.Errorf("building services localization: %w", err)
	}
	if err := transfile.ValidateLocalization(merged); err != nil {
		return fmt.Errorf("building services localization: %w", err)
	}
	if err := transfile.WriteLocalizationFile(b.OutputFile, merged); err != nil {
		return fmt.Errorf("building services localization: %w", err)
	}

	b.Log.Success("wrote services group localization to %s", b.OutputFile)
	return nil
}
