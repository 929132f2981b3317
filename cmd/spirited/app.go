package main

import (
	"github.com/AndrewMorgan2/Spritied-Towards/internal/config"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/logging"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid story configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
