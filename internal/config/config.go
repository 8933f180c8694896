// Package config handles configuration for the console: defaults,
// JSON file overlay, environment overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the registry console.
//
// Fields:
//   - BaseURL: root of the registry REST API (e.g. https://registry.local/api).
//   - RequestTimeout: per-request deadline applied by the HTTP transport.
//   - SnapshotPath: sqlite file holding the persisted session/theme/people
//     snapshot that is rehydrated on startup.
//   - EnvFile: optional dotenv file loaded before reading environment
//     variables; missing files are ignored.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SnapshotPath   string
	EnvFile        string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.SnapshotPath = "regconsole.db"
	c.EnvFile = ".env"
}

// LoadConfig constructs a Config by applying defaults, then overlaying
// the JSON file (if one is named via -c/-config), then environment
// variables, then command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
