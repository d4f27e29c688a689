package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/learnhub/internal/buildinfo"
	"github.com/dmitrijs2005/learnhub/internal/client/cli"
	"github.com/dmitrijs2005/learnhub/internal/client/config"
	"github.com/dmitrijs2005/learnhub/internal/logging"
	"github.com/dmitrijs2005/learnhub/internal/telemetry"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewFromLevel(os.Stderr, cfg.LogLevel)

	shutdown, err := telemetry.Setup(ctx, telemetry.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		logger.Warn(ctx, "tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn(ctx, "flushing traces failed", "error", err)
		}
	}()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
