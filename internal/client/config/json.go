package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/quickworkapp/quickwork-cli/internal/flagx"
	"github.com/quickworkapp/quickwork-cli/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds.
type jsonConfig struct {
	ServerURL      string         `json:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DataFile       string         `json:"data_file"`
	LogLevel       string         `json:"log_level"`
}

// parseJSON overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; if none was given, nothing is loaded.
// Only fields present in the file override the current value. Panics on read
// or unmarshal errors, matching the flag-parsing stage.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
