// Package config loads runtime settings for the QuickWork CLI.
//
// Sources are applied in order, later ones winning:
// defaults -> JSON config file -> environment (.env aware) -> flags.
package config

import "time"

// Config holds runtime settings for the QuickWork CLI.
//
// Fields:
//   - ServerURL: base URL of the QuickWork REST backend.
//   - RequestTimeout: per-request timeout for backend calls.
//   - DataFile: path of the local sqlite file holding session and profile data.
//   - LogLevel: minimum level for structured logs (debug, info, warn, error).
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	DataFile       string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
	c.DataFile = "quickwork.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given), environment variables, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
