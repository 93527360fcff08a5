package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexivanou/carryon-checker/internal/catalog"
	"github.com/alexivanou/carryon-checker/internal/cli"
	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/alexivanou/carryon-checker/internal/database"
	"github.com/alexivanou/carryon-checker/internal/repository"
	"github.com/alexivanou/carryon-checker/internal/service"
	"github.com/alexivanou/carryon-checker/internal/source"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	opts, err := cli.ParseArgs(os.Args[1:], cfg.Report.Lang, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repos *repository.Container
	if cfg.Data.Source == config.SourceDatabase {
		db, err := database.Connect(ctx, cfg.DB)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

		repos, err = prepareDatabase(ctx, db, cfg, logger)
		if err != nil {
			logger.Fatal("Failed to prepare database", zap.Error(err))
		}
	}

	loader, err := source.NewLoader(cfg.Data, repos, logger)
	if err != nil {
		logger.Fatal("Failed to create loader", zap.Error(err))
	}

	store := catalog.NewStore()
	loadCtx, cancel := context.WithTimeout(ctx, cfg.Data.LoadTimeout)
	_, err = source.Reload(loadCtx, loader, store, logger)
	cancel()
	if err != nil {
		logger.Fatal("Reference data unavailable", zap.String("source", string(cfg.Data.Source)), zap.Error(err))
	}

	svc := service.NewService(store, cfg.Report, logger)
	runner := cli.NewRunner(svc, os.Stdout, logger)

	if err := runner.Run(ctx, opts); err != nil {
		if errors.Is(err, service.ErrInvalidSuitcase) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		logger.Fatal("Check failed", zap.Error(err))
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// prepareDatabase migrates the schema and imports the data directory when
// the database holds no rules yet
func prepareDatabase(ctx context.Context, db *sqlx.DB, cfg *config.Config, logger *zap.Logger) (*repository.Container, error) {
	if err := database.Migrate(db, cfg.DB.Type, migrationsDir); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := repository.NewRepositories(db, cfg.DB.Type, cfg.Seeder.BatchSize)

	isEmpty, err := repository.IsDatabaseEmpty(ctx, db)
	if err != nil {
		logger.Warn("Failed to check if database is empty", zap.Error(err))
		return repos, nil
	}
	if !isEmpty {
		return repos, nil
	}

	logger.Info("Database is empty, auto-seeding data...", zap.String("dir", cfg.Data.Dir))
	tables, err := source.NewTextLoader(source.NewFileFetcher(cfg.Data.Dir), logger).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}
	if err := source.Seed(ctx, tables, repos, logger); err != nil {
		return nil, fmt.Errorf("failed to auto-seed database: %w", err)
	}
	logger.Info("Database seeded successfully")

	return repos, nil
}
