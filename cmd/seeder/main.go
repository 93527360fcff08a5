package main

import (
	"context"
	"flag"
	"log"

	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/alexivanou/carryon-checker/internal/database"
	"github.com/alexivanou/carryon-checker/internal/repository"
	"github.com/alexivanou/carryon-checker/internal/source"
	"go.uber.org/zap"
)

func main() {
	var (
		dataDir       = flag.String("data", "", "Directory holding the reference tables (default DATA_DIR)")
		migrationsDir = flag.String("migrations", "migrations", "Migrations directory")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if *dataDir == "" {
		*dataDir = cfg.Data.Dir
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))
	if cfg.DB.IsMemory() {
		logger.Warn("In-memory database is discarded when the seeder exits")
	}

	if err := database.Migrate(db, cfg.DB.Type, *migrationsDir); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Reading reference tables...", zap.String("dir", *dataDir))
	tables, err := source.NewTextLoader(source.NewFileFetcher(*dataDir), logger).Load(ctx)
	if err != nil {
		logger.Fatal("Failed to read reference tables", zap.Error(err))
	}

	repos := repository.NewRepositories(db, cfg.DB.Type, cfg.Seeder.BatchSize)
	if err := source.Seed(ctx, tables, repos, logger); err != nil {
		logger.Fatal("Failed to import reference tables", zap.Error(err))
	}

	logger.Info("Data import completed successfully!",
		zap.Int("airlines", len(tables.Airlines)),
		zap.Int("rules", len(tables.Rules)),
		zap.Int("countries", len(tables.Countries)),
		zap.Int("suitcases", len(tables.Suitcases)),
	)
}
