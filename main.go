// svckit — build-time preparation of the blocked-services dataset and
// its per-locale translations.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/netshield/svckit/config"
	"github.com/netshield/svckit/i18n"
	"github.com/netshield/svckit/locales"
	"github.com/netshield/svckit/logging"
	"github.com/netshield/svckit/services"
	"github.com/netshield/svckit/transfile"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd(logger logging.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "svckit",
		Short: "Blocked-services dataset and localization build tool",
		Long: `svckit — blocked-services dataset and localization build tool.

Merges service records from multiple sources into one services file,
derives the category group list, keeps the base locale's translations
complete, and assembles the combined per-locale localization file.

Commands:
  status     Show dataset info and per-locale translation coverage
  merge      Merge service sources and derive the group list
  locales    Build the combined services group localization file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newStatusCmd(logger),
		newMergeCmd(logger),
		newLocalesCmd(logger),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	logger := logging.NewConsole()
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("svckit version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// merge (merge service sources, derive groups, write services file)
// ---------------------------------------------------------------------------

func newMergeCmd(logger logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "Merge service sources and derive the group list",
		Long: `Merge the configured service sources into one list, deduplicated
by service id (later sources win), derive the sorted group list, and
write the combined services file. Fails when any service has an empty
or missing group.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(logger)
		},
	}
}

func runMerge(logger logging.Logger) error {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return err
	}
	cfg = cfg.Resolve(rootDir)

	if len(cfg.Sources) == 0 {
		return fmt.Errorf("no sources configured in %s", config.FileName)
	}

	lists := make([][]services.Service, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		list, err := services.ReadList(src)
		if err != nil {
			return err
		}
		logger.Info("loaded %d services from %s", len(list), src)
		lists = append(lists, list)
	}

	f, err := services.BuildFile(services.MergeAll(lists...))
	if err != nil {
		return err
	}
	if err := f.WriteFile(cfg.ServicesFile); err != nil {
		return err
	}

	logger.Success("wrote %d services in %d groups to %s",
		len(f.BlockedServices), len(f.Groups), cfg.ServicesFile)
	return nil
}

// ---------------------------------------------------------------------------
// locales (base-locale completeness + aggregation + combined file)
// ---------------------------------------------------------------------------

func newLocalesCmd(logger logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "Build the combined services group localization file",
		Long: `Fill in TODO placeholders for groups missing from the base locale,
aggregate every locale's translations into one structure keyed by group
id and locale, validate it, and write the combined i18n file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocales(logger)
		},
	}
}

func runLocales(logger logging.Logger) error {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return err
	}
	cfg = cfg.Resolve(rootDir)

	b := &locales.Builder{
		LocalesDir:   cfg.LocalesDir,
		BaseLocale:   cfg.BaseLocale,
		ServicesFile: cfg.ServicesFile,
		OutputFile:   cfg.I18NFile,
		Log:          logger,
	}
	return b.Build()
}

// ---------------------------------------------------------------------------
// status (read-only: dataset info + translation coverage)
// ---------------------------------------------------------------------------

func newStatusCmd(logger logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show dataset info and per-locale translation coverage",
		Long: `Show the configured layout, service and group counts, and how much
of the group set each locale has translated. Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(logger)
		},
	}
}

func runStatus(logger logging.Logger) error {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return err
	}
	cfg = cfg.Resolve(rootDir)

	header := color.New(color.FgBlue).Sprint(i18n.T("Project"))
	fmt.Fprintf(os.Stderr, "\n%s\n", header)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))

	absRoot, _ := filepath.Abs(rootDir)
	fmt.Fprintf(os.Stderr, "  %-14s %s\n", i18n.T("Root:"), absRoot)
	fmt.Fprintf(os.Stderr, "  %-14s %s\n", i18n.T("Base locale:"), cfg.BaseLocale)

	svc, err := services.ReadFile(cfg.ServicesFile)
	if err != nil {
		logger.Info("%s", i18n.T("No services file found. Run 'svckit merge' first."))
		return nil
	}
	fmt.Fprintf(os.Stderr, "  %-14s %d\n", i18n.T("Services:"), len(svc.BlockedServices))
	fmt.Fprintf(os.Stderr, "  %-14s %d\n", i18n.T("Groups:"), len(svc.Groups))
	fmt.Fprintln(os.Stderr)

	b := &locales.Builder{
		LocalesDir:   cfg.LocalesDir,
		BaseLocale:   cfg.BaseLocale,
		ServicesFile: cfg.ServicesFile,
		Log:          logger,
	}
	codes, err := b.Locales()
	if err != nil || len(codes) == 0 {
		logger.Info("%s", i18n.T("No locale directories found."))
		return nil
	}
	merged, err := b.Aggregate()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%s\n", color.New(color.FgBlue).Sprint(i18n.T("Locales")))
	width := localeColumnWidth(codes)
	for _, code := range codes {
		translated := translatedCount(merged, svc, code)
		percent := coveragePercent(translated, len(svc.Groups))

		label := fmt.Sprintf(i18n.N("%d group translated", "%d groups translated", translated), translated)
		name := nativeName(code)
		if name != "" {
			name = " (" + name + ")"
		}
		fmt.Fprintf(os.Stderr, "  %-*s %s  %s%s\n", width, code, progressBar(percent, 20), label, name)
	}
	fmt.Fprintln(os.Stderr)

	return nil
}

// translatedCount counts the groups a locale has a real name for.
func translatedCount(merged transfile.GroupTranslations, svc *services.File, code string) int {
	n := 0
	for _, id := range svc.GroupIDs() {
		if merged[id][code][transfile.SignName] != "" {
			n++
		}
	}
	return n
}

// coveragePercent is translated/total as a percentage; an empty group
// set counts as fully covered.
func coveragePercent(translated, total int) int {
	if total == 0 {
		return 100
	}
	return translated * 100 / total
}

// progressBar renders a colored bar of the given width for a 0-100
// percentage. Out-of-range values are clamped.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := width * percent / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	c := color.New(color.FgRed)
	switch {
	case percent >= 100:
		c = color.New(color.FgGreen)
	case percent >= 40:
		c = color.New(color.FgYellow)
	}
	return fmt.Sprintf("%s %3d%%", c.Sprint(bar), percent)
}

// localeColumnWidth returns the width of the widest locale code.
func localeColumnWidth(codes []string) int {
	width := 0
	for _, code := range codes {
		if len(code) > width {
			width = len(code)
		}
	}
	return width
}

// nativeName returns a locale's self-described language name, or ""
// when the code does not resolve to a displayable language.
func nativeName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.Self.Name(tag)
}
