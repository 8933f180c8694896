package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig is a DTO used only for JSON unmarshalling. Durations are
// given in seconds so config files stay free of Go duration syntax.
type jsonConfig struct {
	BaseURL               string `json:"base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	SnapshotPath          string `json:"snapshot_path"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. When no file is named the function is a no-op; a
// named file that cannot be read or parsed panics, since a broken
// explicit config should never be silently ignored.
func parseJSON(cfg *Config) {
	path := jsonConfigFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.SnapshotPath != "" {
		cfg.SnapshotPath = jc.SnapshotPath
	}
}
