package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"travel-vlogs/pkg/config"
	"travel-vlogs/pkg/handlers"
	"travel-vlogs/pkg/logger"
	"travel-vlogs/pkg/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load(config.New())
	if err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to load configuration")
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		logger.GetLogger().WithError(err).Fatal("Invalid log settings")
	}

	// Initialize services
	if err := services.InitService(cfg); err != nil {
		logger.GetLogger().WithError(err).Fatal("Failed to initialize gallery")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	if err := handlers.Run(ctx, cfg, services.Default()); err != nil {
		logger.GetLogger().WithError(err).Error("Server error")
		os.Exit(1)
	}
}
