package transfile

import (
	"fmt"
	"strings"
)

// Key is a parsed servicesgroup translation key.
type Key struct {
	ID   string
	Sign string
}

// ParseKey splits a flat translation key into its parts. Keys must have
// exactly three dot-separated segments: the servicesgroup prefix, a
// non-empty group id, and a known sign.
func ParseKey(raw string) (Key, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("key %q: want 3 dot-separated parts, got %d", raw, len(parts))
	}

	prefix, id, sign := parts[0], parts[1], parts[2]
	switch {
	case prefix != KeyPrefix:
		return Key{}, fmt.Errorf("key %q: prefix %q is not %q", raw, prefix, KeyPrefix)
	case id == "":
		return Key{}, fmt.Errorf("key %q: empty group id", raw)
	case sign != SignName:
		return Key{}, fmt.Errorf("key %q: unknown sign %q", raw, sign)
	}

	return Key{ID: id, Sign: sign}, nil
}

// GroupTranslations maps group id -> locale -> sign -> localized value.
type GroupTranslations map[string]map[string]map[string]string

// ParseLocale converts one locale's flat translation list into the
// nested per-id structure. Placeholder values are skipped. Malformed
// keys are collected and returned; they never abort the parse, so the
// caller gets every valid entry alongside the list of offenders.
func ParseLocale(entries []Translation, locale string) (GroupTranslations, []string) {
	out := make(GroupTranslations)
	var invalid []string

	for _, entry := range entries {
		for _, raw := range entry.Keys() {
			value := entry[raw]
			if IsPlaceholder(value) {
				continue
			}

			key, err := ParseKey(raw)
			if err != nil {
				invalid = append(invalid, raw)
				continue
			}
			out.Set(key.ID, locale, key.Sign, value)
		}
	}

	return out, invalid
}

// Set stores a value at id/locale/sign, allocating the intermediate
// maps as needed.
func (g GroupTranslations) Set(id, locale, sign, value string) {
	byLocale := g[id]
	if byLocale == nil {
		byLocale = make(map[string]map[string]string)
		g[id] = byLocale
	}
	signs := byLocale[locale]
	if signs == nil {
		signs = make(map[string]string)
		byLocale[locale] = signs
	}
	signs[sign] = value
}

// Merge folds other into g. On matching id/locale/sign the value from
// other wins; distinct locales and ids coexist.
func (g GroupTranslations) Merge(other GroupTranslations) {
	for id, byLocale := range other {
		for locale, signs := range byLocale {
			for sign, value := range signs {
				g.Set(id, locale, sign, value)
			}
		}
	}
}
