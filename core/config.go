package core

import (
	"path/filepath"

	"github.com/advent-bits/aocd/std/utils/toolutils"
)

// Global configuration of the solver.
// Set once at startup by LoadConfig, read-only afterwards.
var C = DefaultConfig()

// Config represents the configuration of the solver.
type Config struct {
	Core struct {
		// Logging level
		LogLevel string `json:"log_level"`
		// Output log to file
		LogFile string `json:"log_file"`
		// Log format, text or json
		LogFormat string `json:"log_format"`

		// Config file base dir
		BaseDir string `json:"-"`
	} `json:"core"`

	Runner struct {
		// Directory of per-year input files (relative to the config file)
		InputDir string `json:"input_dir"`
		// Print how long each part took
		Timing bool `json:"timing"`
	} `json:"runner"`
}

func DefaultConfig() *Config {
	c := &Config{}
	c.Core.LogLevel = "INFO"
	c.Core.LogFile = ""
	c.Core.LogFormat = "text"
	c.Core.BaseDir = ""

	c.Runner.InputDir = ""
	c.Runner.Timing = true

	return c
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(file string) (*Config, error) {
	c := DefaultConfig()
	if err := toolutils.ReadYaml(c, file); err != nil {
		return nil, err
	}
	c.Core.BaseDir = filepath.Dir(file)
	return c, nil
}

// ResolveRelPath resolves a possibly relative path based on config file path.
func (c *Config) ResolveRelPath(target string) string {
	if target == "" || filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(c.Core.BaseDir, target)
}
