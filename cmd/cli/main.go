package main

import (
	"context"
	"log"
	"os"

	"github.com/quickworkapp/quickwork-cli/internal/buildinfo"
	"github.com/quickworkapp/quickwork-cli/internal/client/cli"
	"github.com/quickworkapp/quickwork-cli/internal/client/config"
	"github.com/quickworkapp/quickwork-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
