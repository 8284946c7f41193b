package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the environment. A .env file in the
// working directory is loaded first (missing file is fine; existing process
// env always wins over .env entries).
//
// Recognized variables:
//
//	QUICKWORK_SERVER_URL
//	QUICKWORK_REQUEST_TIMEOUT  (Go duration, e.g. "15s")
//	QUICKWORK_DATA_FILE
//	QUICKWORK_LOG_LEVEL
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("QUICKWORK_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("QUICKWORK_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("QUICKWORK_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("QUICKWORK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
