package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver for database/sql
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Connect creates a database connection based on configuration using sqlx
func Connect(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	driverName := "pgx"
	if cfg.IsMemory() {
		driverName = "sqlite3"
	}

	db, err := sqlx.ConnectContext(ctx, driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// MigrationsPath returns the migration directory for the database type
func MigrationsPath(dir string, dbType config.DBType) string {
	if dbType == config.DBTypePostgreSQL {
		return filepath.Join(dir, "postgres")
	}
	return filepath.Join(dir, "sqlite")
}

// NewMigrator builds a migrate instance over the open connection db using
// the migrations for dbType under dir. Closing it also closes db.
func NewMigrator(db *sqlx.DB, dbType config.DBType, dir string) (*migrate.Migrate, error) {
	var (
		driver migratedb.Driver
		name   string
		err    error
	)

	if dbType == config.DBTypePostgreSQL {
		name = "postgres"
		driver, err = postgres.WithInstance(db.DB, &postgres.Config{})
	} else {
		name = "sqlite3"
		driver, err = sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("could not create %s driver: %w", name, err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+MigrationsPath(dir, dbType), name, driver)
	if err != nil {
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return m, nil
}

// Migrate applies all pending migrations from dir to db. The connection is
// reused, so in-memory databases are migrated in place.
func Migrate(db *sqlx.DB, dbType config.DBType, dir string) error {
	m, err := NewMigrator(db, dbType, dir)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
