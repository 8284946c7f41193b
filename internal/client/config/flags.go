package config

import (
	"flag"
	"os"
	"time"

	"github.com/quickworkapp/quickwork-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   base URL of the QuickWork backend (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-d string   path to the local data file (default from Config)
//	-l string   log level (default from Config)
//
// os.Args is filtered to only the flags handled here, so the config-file
// flags (-c/-config) parsed elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-t", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "s", cfg.ServerURL, "base URL of the QuickWork backend")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DataFile, "d", cfg.DataFile, "path to the local data file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
