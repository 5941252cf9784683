package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/thombet/addon-check/addon"
	"github.com/thombet/addon-check/checks"
	"github.com/thombet/addon-check/config"
	"github.com/thombet/addon-check/report"
	"github.com/thombet/addon-check/reporter"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("addon-check", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a TOML configuration file")
	branch := fs.String("branch", "", "target branch to validate against")
	allowMismatch := fs.Bool("allow-folder-id-mismatch", false, "tolerate addon folder names that differ from the addon id")
	reporters := fs.String("reporters", "", "comma-separated reporters to use (console, json, html)")
	jsonPath := fs.String("json-report", "", "path the json reporter writes to")
	htmlPath := fs.String("html-report", "", "path the html reporter writes to")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.Parse(args)

	logger := setupLogger(*logLevel)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: addon-check [flags] <addon-dir>...")
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Errorf("%v", err)
		return 2
	}

	// flags override the file configuration
	if *branch != "" {
		cfg.Branch = *branch
	}
	if *allowMismatch {
		cfg.AllowFolderIDMismatch = true
	}
	if *reporters != "" {
		cfg.Reporters = strings.Split(*reporters, ",")
	}
	if err := cfg.Validate(); err != nil {
		logger.Errorf("%v", err)
		return 2
	}

	registry := reporter.NewRegistry()
	registry.Register("console", reporter.NewConsole(logger))
	registry.Register("json", &reporter.JSON{Path: pick(*jsonPath, cfg.ReporterLogPath)})
	registry.Register("html", &reporter.HTML{Path: pick(*htmlPath, "addon-check-report.html")})

	selected, err := registry.Select(cfg.Reporters)
	if err != nil {
		logger.Errorf("%v", err)
		return 2
	}

	engine := checks.NewRegistry()

	failed := false
	for _, addonPath := range fs.Args() {
		rep, err := checkAddon(engine, cfg, addonPath)
		if err != nil {
			logger.Errorf("checking %s: %v", addonPath, err)
			failed = true
			continue
		}

		addonID := filepath.Base(filepath.Clean(addonPath))
		for _, r := range selected {
			if err := r.Report(addonID, rep); err != nil {
				logger.Errorf("reporting %s: %v", addonPath, err)
				failed = true
			}
		}

		if rep.HasProblems() {
			failed = true
		}
	}

	if failed {
		return 1
	}
	return 0
}

// checkAddon runs one full validation pass with a fresh report. Reports are
// never shared between addons.
func checkAddon(engine *checks.Registry, cfg *config.Config, addonPath string) (*report.Report, error) {
	index, err := addon.BuildIndex(addonPath)
	if err != nil {
		return nil, fmt.Errorf("build file index: %w", err)
	}

	// a descriptor that fails to parse is reported by the addon-xml check,
	// not treated as a fatal error
	md, err := addon.LoadMetadata(addonPath)
	if err != nil {
		logrus.WithField("addon", addonPath).Debugf("metadata not parseable: %v", err)
		md = nil
	}

	rep := report.New()
	engine.Run(rep, checks.Input{
		AddonPath:             addonPath,
		Index:                 index,
		Metadata:              md,
		AllowFolderIDMismatch: cfg.AllowFolderIDMismatch,
		NewStructureSupported: cfg.NewLanguageStructureSupported(),
		Whitelist: checks.WhitelistOptions{
			DebugLogEnabled:    cfg.EnableDebugLog,
			DebugLogPath:       cfg.DebugLogPath,
			ReporterLogEnabled: cfg.EnableReporterLog,
			ReporterLogPath:    cfg.ReporterLogPath,
		},
	})

	return rep, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func setupLogger(level string) *logrus.Logger {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger
}

func pick(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	return fallback
}
