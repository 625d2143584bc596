package main

import (
	"os"
	"path/filepath"

	"github.com/Nishant2356/Card-game/internal/config"
	"github.com/Nishant2356/Card-game/internal/logging"
	"github.com/Nishant2356/Card-game/internal/storage"
)

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid animeclash configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create an animeclash_config.json with 'character_list' and 'move_list' arrays and an optional server.address",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, cfg *config.LoadedConfig) storage.Repository {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Fatal("Failed to create database directory", err, logging.Fields{"dir": dir})
		}
	}
	db, err := storage.OpenAndMigrate(dbPath, cfg.Characters, cfg.Moves)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
