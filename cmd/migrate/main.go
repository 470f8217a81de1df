package main

import (
	"fmt"
	"os"

	"realty_backend/database"
	"realty_backend/internal/config"
	"realty_backend/internal/logger"
)

// Создает таблицы без запуска HTTP сервера
func main() {
	cfg, err := config.LoadUnvalidated()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Server.Env)

	if cfg.Database.DSN == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migration completed", "tables", len(database.Models))
}
