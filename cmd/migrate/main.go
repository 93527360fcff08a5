package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/alexivanou/carryon-checker/internal/database"
	"github.com/golang-migrate/migrate/v4"
	"go.uber.org/zap"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, or version")
		dir     = flag.String("dir", "migrations", "Migrations directory")
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
	if cfg.DB.IsMemory() {
		logger.Warn("In-memory database is discarded when the command exits")
	}

	db, err := database.Connect(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	m, err := database.NewMigrator(db, cfg.DB.Type, *dir)
	if err != nil {
		logger.Fatal("Failed to create migration instance", zap.Error(err))
	}
	defer m.Close()

	if err := run(m, *command, logger); err != nil {
		logger.Fatal("Migration command failed", zap.String("command", *command), zap.Error(err))
	}
	logger.Info("Migration command completed successfully")
}

func run(m *migrate.Migrate, command string, logger *zap.Logger) error {
	switch command {
	case "up":
		logger.Info("Running migrations UP")
		return ignoreNoChange(m.Up())
	case "down":
		logger.Info("Running migrations DOWN")
		return ignoreNoChange(m.Down())
	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("No migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		logger.Info("Migration version", zap.Uint("version", v), zap.Bool("dirty", dirty))
		return nil
	}
	return errors.New("unknown command")
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
