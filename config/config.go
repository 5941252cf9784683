// Package config holds the tool configuration: the target branch, the
// folder/id mismatch tolerance, and the tool log files the whitelist check
// must ignore. Configuration is read from a TOML file and can be overridden
// by command-line flags.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Branch names, oldest first. The new resource.language.* directory layout
// is supported from krypton onwards.
var branchNewLanguageStructure = map[string]bool{
	"gotham":   false,
	"helix":    false,
	"isengard": false,
	"jarvis":   false,
	"krypton":  true,
	"leia":     true,
	"matrix":   true,
	"nexus":    true,
	"omega":    true,
}

// Default log file names, written next to where the tool runs.
const (
	DefaultDebugLogName    = "addon-check.log"
	DefaultReporterLogName = "addon-check-report.json"
)

// Config is the tool configuration for one run.
type Config struct {
	// Branch is the target version the addon is validated against.
	Branch string `toml:"branch"`

	// AllowFolderIDMismatch tolerates an addon folder named differently
	// from the declared addon id.
	AllowFolderIDMismatch bool `toml:"allow_folder_id_mismatch"`

	EnableDebugLog    bool   `toml:"enable_debug_log"`
	DebugLogPath      string `toml:"debug_log_path"`
	EnableReporterLog bool   `toml:"enable_reporter_log"`
	ReporterLogPath   string `toml:"reporter_log_path"`

	// Reporters names the reporters findings are dispatched to.
	Reporters []string `toml:"reporters"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Branch:          "nexus",
		DebugLogPath:    DefaultDebugLogName,
		ReporterLogPath: DefaultReporterLogName,
		Reporters:       []string{"console"},
	}
}

// Load reads a TOML configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration refers to a known branch.
func (c *Config) Validate() error {
	if _, ok := branchNewLanguageStructure[c.Branch]; !ok {
		return fmt.Errorf("unknown branch %q", c.Branch)
	}
	return nil
}

// NewLanguageStructureSupported reports whether the target branch supports
// the resource.language.* directory layout.
func (c *Config) NewLanguageStructureSupported() bool {
	return branchNewLanguageStructure[c.Branch]
}
