package main

import (
	"os"

	"go.uber.org/zap"

	"healthplatform/internal/config"
	"healthplatform/internal/repository"
	"healthplatform/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Idempotent schema setup, done once before serving any request.
	repository.MigrateDB(db, logger)

	srv := server.NewServer(db, cfg, logger)
	srv.Run(cfg.Server.Addr)
}
