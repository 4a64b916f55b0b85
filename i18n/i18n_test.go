package i18n

import "testing"

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LANGUAGE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
}

func TestDetectLanguage(t *testing.T) {
	t.Run("LANGUAGE has highest priority", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "ru_RU.UTF-8:en_US")
		t.Setenv("LC_ALL", "de_DE.UTF-8")

		if got := detectLanguage(); got != "ru_RU" {
			t.Fatalf("detectLanguage() = %q, want ru_RU", got)
		}
	})

	t.Run("C and POSIX are skipped", func(t *testing.T) {
		clearLocaleEnv(t)
		t.Setenv("LANGUAGE", "C")
		t.Setenv("LC_ALL", "POSIX")
		t.Setenv("LC_MESSAGES", "es_ES.UTF-8")

		if got := detectLanguage(); got != "es_ES" {
			t.Fatalf("detectLanguage() = %q, want es_ES", got)
		}
	})

	t.Run("falls back to en", func(t *testing.T) {
		clearLocaleEnv(t)
		if got := detectLanguage(); got != "en" {
			t.Fatalf("detectLanguage() = %q, want en", got)
		}
	})
}

func TestTAndNFallbackWhenUninitialized(t *testing.T) {
	old := locale
	locale = nil
	t.Cleanup(func() { locale = old })

	if got := T("Project"); got != "Project" {
		t.Fatalf("T fallback = %q, want Project", got)
	}
	if got := N("group", "groups", 1); got != "group" {
		t.Fatalf("N singular fallback = %q, want group", got)
	}
	if got := N("group", "groups", 2); got != "groups" {
		t.Fatalf("N plural fallback = %q, want groups", got)
	}
}

func TestInitLoadsEmbeddedSpanish(t *testing.T) {
	old := locale
	t.Cleanup(func() { locale = old })

	Init("es")
	if got := T("Project"); got != "Proyecto" {
		t.Fatalf("T(Project) = %q, want Proyecto", got)
	}
	// Untranslated strings pass through.
	if got := T("untranslated sentinel"); got != "untranslated sentinel" {
		t.Fatalf("passthrough = %q", got)
	}
}
