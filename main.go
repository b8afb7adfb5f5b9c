// pattern: Imperative Shell
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"repostat/internal/config"
	"repostat/internal/gitcmd"
	"repostat/internal/inspect"
	"repostat/internal/logging"
	"repostat/internal/report"
)

var version = "dev"

func main() {
	timeout := flag.DurationP("timeout", "t", 0, "per git invocation timeout (0 disables)")
	logLevel := flag.String("log-level", "", "minimum log level (debug, info, warn, error)")
	theme := flag.String("theme", "", "catppuccin flavor for table colors (latte, frappe, macchiato, mocha)")
	showVersion := flag.BoolP("version", "V", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println("repostat " + version)
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *timeout, *logLevel, *theme); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: repostat [options] <config.yaml>\n\n")
	fmt.Fprintf(os.Stderr, "Reports branch, cleanliness, and upstream sync status for each\n")
	fmt.Fprintf(os.Stderr, "repository listed in the config file.\n\nOptions:\n")
	flag.PrintDefaults()
}

func run(configPath string, timeout time.Duration, logLevel, theme string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if theme != "" {
		cfg.Theme = theme
	}

	logger, cleanup, err := logging.New(logging.Config{
		Level:    cfg.LogLevel,
		FilePath: cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	defer cleanup()

	inspector := inspect.New(gitcmd.ExecRunner{}, logger, timeout)
	sections := collectSections(context.Background(), inspector, cfg)

	report.Render(os.Stdout, report.NewStyles(cfg.Theme), sections)
	return nil
}

// collectSections inspects every configured directory sequentially, in
// config order: the ungrouped list first, then each group. A failing
// directory becomes an error row; it never aborts the run.
func collectSections(ctx context.Context, inspector *inspect.Inspector, cfg config.Config) []report.Section {
	var sections []report.Section

	if len(cfg.Directories) > 0 || len(cfg.Groups) == 0 {
		sections = append(sections, collectSection(ctx, inspector, "", cfg.Directories))
	}
	for _, group := range cfg.Groups {
		sections = append(sections, collectSection(ctx, inspector, group.Name, group.Directories))
	}

	return sections
}

func collectSection(ctx context.Context, inspector *inspect.Inspector, title string, dirs []string) report.Section {
	section := report.Section{Title: title}
	for _, dir := range dirs {
		res := inspector.Inspect(ctx, dir)
		section.Rows = append(section.Rows, report.BuildRow(res))
	}
	return section
}
