package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/peakhub/peakhub/internal/cli"
	"github.com/peakhub/peakhub/internal/config"
	"github.com/peakhub/peakhub/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
