package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading the dotenv
// file first so a local .env behaves like exported variables. A missing
// dotenv file is not an error; explicitly set process environment wins
// over file contents (godotenv.Load never overrides existing vars).
func parseEnv(cfg *Config) {
	_ = godotenv.Load(cfg.EnvFile)

	if v := os.Getenv("REGCONSOLE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("REGCONSOLE_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("REGCONSOLE_SNAPSHOT_PATH"); v != "" {
		cfg.SnapshotPath = v
	}
}
