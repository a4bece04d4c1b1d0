package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gomarket_sync/config"
	"gomarket_sync/internal/app"
	"gomarket_sync/pkg/logger"
)

func main() {
	_ = godotenv.Load() // .env необязателен

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewLoggerWithConfig(nil, "", logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger.Log("Started stock sync")
	summary := app.NewSyncServer(cfg, appLogger).Run(ctx)
	appLogger.Log("Finished stock sync %s: %d targets synced, %d failed", summary.RunID, len(summary.Results), len(summary.Failed))
}
