package transfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ValidateTranslations checks the translation-list contract: every
// entry is an object with exactly one key, and every key parses as a
// servicesgroup translation key.
func ValidateTranslations(list []Translation) error {
	for i, entry := range list {
		if len(entry) != 1 {
			return fmt.Errorf("translation #%d: want exactly one key, got %d", i+1, len(entry))
		}
		if _, err := ParseKey(entry.FirstKey()); err != nil {
			return fmt.Errorf("translation #%d: %w", i+1, err)
		}
	}
	return nil
}

// ValidateLocalization checks the combined id -> locale -> sign shape:
// non-empty ids and locales, known signs, non-nil leaves.
func ValidateLocalization(g GroupTranslations) error {
	for id, byLocale := range g {
		if id == "" {
			return fmt.Errorf("localization: empty group id")
		}
		if len(byLocale) == 0 {
			return fmt.Errorf("localization: group %q has no locales", id)
		}
		for locale, signs := range byLocale {
			if locale == "" {
				return fmt.Errorf("localization: group %q has an empty locale code", id)
			}
			if len(signs) == 0 {
				return fmt.Errorf("localization: group %q locale %q has no values", id, locale)
			}
			for sign := range signs {
				if sign != SignName {
					return fmt.Errorf("localization: group %q locale %q: unknown sign %q", id, locale, sign)
				}
			}
		}
	}
	return nil
}

// localizationFile is the on-disk shape of the combined i18n output.
type localizationFile struct {
	Groups GroupTranslations `json:"groups"`
}

// WriteLocalizationFile writes the combined localization structure
// wrapped under a top-level groups key, 4-space-indented. Map keys
// marshal sorted, so output bytes are deterministic.
func WriteLocalizationFile(path string, g GroupTranslations) error {
	data, err := json.MarshalIndent(localizationFile{Groups: g}, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLocalizationFile reads a combined localization file back into the
// nested structure.
func ReadLocalizationFile(path string) (GroupTranslations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f localizationFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f.Groups, nil
}
