// Package config holds runtime settings for the finanzas CLI.
//
// Values are resolved in layers, later sources winning:
// defaults → .env / environment → JSON file (-c/-config) → command-line flags.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings.
//
// Fields:
//   - AuthAPIBase: base URL of the authentication service.
//   - FinanzasAPIBase: base URL of the finance-records service.
//   - SessionFile: path of the persisted session state (token + identity).
//   - Debug: enables request-level diagnostics on stderr.
type Config struct {
	AuthAPIBase     string
	FinanzasAPIBase string
	SessionFile     string
	Debug           bool
}

// LoadDefaults populates c with sensible defaults. Both services default to
// localhost, matching a local development setup.
func (c *Config) LoadDefaults() {
	c.AuthAPIBase = "http://localhost:3001"
	c.FinanzasAPIBase = "http://localhost:3002"
	c.SessionFile = defaultSessionFile()
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays environment
// variables, JSON (if present) and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "finanzas", "session.json")
}
