package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/netshield/svckit/logging"
	"github.com/netshield/svckit/services"
	"github.com/netshield/svckit/transfile"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		suffix  string
	}{
		{name: "clamps below zero", percent: -10, suffix: "  0%"},
		{name: "mid range", percent: 50, suffix: " 50%"},
		{name: "clamps above hundred", percent: 120, suffix: "100%"},
	}

	for _, tc := range tests {
		got := progressBar(tc.percent, 4)
		if !strings.HasSuffix(got, tc.suffix) {
			t.Fatalf("%s: progressBar() = %q, want suffix %q", tc.name, got, tc.suffix)
		}
	}

	full := progressBar(100, 4)
	if !strings.Contains(full, "████") {
		t.Fatalf("full bar = %q, want four filled cells", full)
	}
	empty := progressBar(0, 4)
	if !strings.Contains(empty, "░░░░") {
		t.Fatalf("empty bar = %q, want four empty cells", empty)
	}
}

func TestCoveragePercent(t *testing.T) {
	if got := coveragePercent(0, 0); got != 100 {
		t.Fatalf("coveragePercent(0, 0) = %d, want 100", got)
	}
	if got := coveragePercent(1, 2); got != 50 {
		t.Fatalf("coveragePercent(1, 2) = %d, want 50", got)
	}
	if got := coveragePercent(3, 3); got != 100 {
		t.Fatalf("coveragePercent(3, 3) = %d, want 100", got)
	}
}

func TestTranslatedCount(t *testing.T) {
	svc := &services.File{Groups: []services.Group{{ID: "cdn"}, {ID: "ads"}}}
	merged := transfile.GroupTranslations{
		"cdn": {"es": {"name": "Red de entrega"}},
	}

	if got := translatedCount(merged, svc, "es"); got != 1 {
		t.Fatalf("translatedCount(es) = %d, want 1", got)
	}
	if got := translatedCount(merged, svc, "de"); got != 0 {
		t.Fatalf("translatedCount(de) = %d, want 0", got)
	}
}

func TestLocaleColumnWidth(t *testing.T) {
	if got := localeColumnWidth([]string{"en", "pt-BR", "es"}); got != len("pt-BR") {
		t.Fatalf("localeColumnWidth = %d, want %d", got, len("pt-BR"))
	}
	if got := localeColumnWidth(nil); got != 0 {
		t.Fatalf("localeColumnWidth(nil) = %d, want 0", got)
	}
}

func TestNativeName(t *testing.T) {
	if got := nativeName("es"); got == "" {
		t.Fatal("nativeName(es) should resolve")
	}
	if got := nativeName("definitely-not-a-tag"); got != "" {
		t.Fatalf("nativeName(bad) = %q, want empty", got)
	}
}

func TestRunMergeEndToEnd(t *testing.T) {
	dir := t.TempDir()
	oldRoot := rootDir
	rootDir = dir
	t.Cleanup(func() { rootDir = oldRoot })

	cfgContent := "sources:\n  - base.json\n  - overrides.json\n"
	if err := os.WriteFile(filepath.Join(dir, ".svckit.yaml"), []byte(cfgContent), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "base.json"),
		[]byte(`[{"id":"cdn","group":"infra"},{"id":"ads","group":"tracking"}]`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "overrides.json"),
		[]byte(`[{"id":"ads","group":"advertising"}]`), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runMerge(&logging.ConsoleLogger{Out: &buf}); err != nil {
		t.Fatalf("runMerge error: %v", err)
	}

	out, err := services.ReadFile(filepath.Join(dir, "services.json"))
	if err != nil {
		t.Fatalf("reading merged output: %v", err)
	}
	if len(out.BlockedServices) != 2 {
		t.Fatalf("services = %d, want 2", len(out.BlockedServices))
	}
	if got := out.GroupIDs(); len(got) != 2 || got[0] != "advertising" || got[1] != "infra" {
		t.Fatalf("groups = %v, want [advertising infra]", got)
	}
	if !strings.Contains(buf.String(), "[OK]") {
		t.Fatalf("expected success log, got: %s", buf.String())
	}
}

func TestRunMergeRequiresSources(t *testing.T) {
	dir := t.TempDir()
	oldRoot := rootDir
	rootDir = dir
	t.Cleanup(func() { rootDir = oldRoot })

	if err := runMerge(logging.Discard); err == nil {
		t.Fatal("expected error when no sources configured")
	}
}
