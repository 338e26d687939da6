package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/pageza/calorielens/backend/config"
	"github.com/pageza/calorielens/backend/internal/database"
	"github.com/pageza/calorielens/backend/internal/logger"
)

func main() {
	path := flag.String("file", "data/foods.json", "JSON array of food items to load")
	flag.Parse()

	cfg, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	f, err := os.Open(*path)
	if err != nil {
		zl.Fatal("failed to open food file", zap.String("path", *path), zap.Error(err))
	}
	defer f.Close()

	items, err := database.LoadFoods(f)
	if err != nil {
		zl.Fatal("failed to read food items", zap.Error(err))
	}

	db, err := database.New(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db) //nolint:errcheck

	if err := database.Migrate(db); err != nil {
		zl.Fatal("failed to migrate database", zap.Error(err))
	}

	n, err := database.SeedFoods(context.Background(), db, items)
	if err != nil {
		zl.Fatal("failed to seed food items", zap.Error(err))
	}
	zl.Info("seeded food items", zap.Int64("rows", n), zap.String("path", *path))
}
