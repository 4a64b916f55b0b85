// Package transfile handles the flat services-group translation files.
//
// A locale's translation file is a JSON array of single-key objects:
//
//	[
//	    { "servicesgroup.cdn.name": "Content delivery" },
//	    { "servicesgroup.ads.name": "Advertising" }
//	]
//
// Keys follow servicesgroup.<id>.<sign>, where <sign> is the translated
// field (currently only "name"). Values containing the TODO: marker are
// machine-generated placeholders awaiting a human translation.
package transfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Translation is one entry of a translation file: a single-key mapping
// from a flat key to a localized string.
type Translation map[string]string

// KeyPrefix is the fixed first segment of every translation key.
const KeyPrefix = "servicesgroup"

// SignName is the only translated field currently produced.
const SignName = "name"

// todoMarker flags placeholder values synthesized by the completeness
// checker.
const todoMarker = "TODO:"

// Keys returns the entry's keys sorted lexicographically. Well-formed
// entries have exactly one.
func (t Translation) Keys() []string {
	keys := lo.Keys(t)
	sort.Strings(keys)
	return keys
}

// FirstKey returns the entry's first key, or "" for an empty entry.
func (t Translation) FirstKey() string {
	keys := t.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// SortByFirstKeyName sorts a translation list in place by each entry's
// first key name.
func SortByFirstKeyName(list []Translation) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].FirstKey() < list[j].FirstKey()
	})
}

// NameKey builds the name translation key for a group id.
func NameKey(id string) string {
	return KeyPrefix + "." + id + "." + SignName
}

// Placeholder builds a TODO placeholder entry for a group that has no
// base-locale translation yet.
func Placeholder(id string) Translation {
	return Translation{NameKey(id): "TODO: name for group " + id}
}

// IsPlaceholder reports whether a translation value is a TODO
// placeholder rather than real content.
func IsPlaceholder(value string) bool {
	return strings.Contains(value, todoMarker)
}

// ReadFile reads a locale translation file.
func ReadFile(path string) ([]Translation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var list []Translation
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return list, nil
}

// WriteFile validates, sorts by key, and writes a translation list with
// 4-space indentation. The list is sorted in place.
func WriteFile(path string, list []Translation) error {
	if err := ValidateTranslations(list); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	SortByFirstKeyName(list)

	data, err := json.MarshalIndent(list, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
