package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shopcart/internal/config"
	"shopcart/internal/repository"
	"shopcart/internal/server"
)

func main() {
	_ = godotenv.Load() // Optional .env for local development

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err) // Should not happen in development
	}
	defer func() {
		_ = logger.Sync() // Flushes buffer, if any
	}()

	// Load configuration
	cfgPath := "configs/config.yml"
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Database connection
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	repository.MigrateDB(db, logger)

	// Initialize and run the server
	srv, err := server.NewServer(db, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	srv.Run(cfg.Server.Port)
}
