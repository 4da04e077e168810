package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"healthplatform/internal/config"
	"healthplatform/internal/dashboard"
	"healthplatform/internal/healthapi"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	api := healthapi.NewClient(cfg.Dashboard.BackendHost, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := api.HealthCheck(ctx); err != nil {
		logger.Warn("Backend not reachable yet, starting anyway",
			zap.String("backend_host", cfg.Dashboard.BackendHost), zap.Error(err))
	}

	srv := dashboard.NewServer(api, logger)
	srv.Run(cfg.Dashboard.Addr)
}
