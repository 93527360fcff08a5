package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/alexivanou/carryon-checker/internal/model"
	"github.com/jmoiron/sqlx"
)

// Tables holds the reference table names in load order
var Tables = []string{"airlines", "baggage_rules", "countries", "suitcases"}

// AirlineRepository defines operations for airlines
type AirlineRepository interface {
	ListAirlines(ctx context.Context) ([]model.Airline, error)
	BulkInsertAirlines(ctx context.Context, airlines []model.Airline) error
}

// BaggageRuleRepository defines operations for baggage rules
type BaggageRuleRepository interface {
	ListBaggageRules(ctx context.Context) ([]model.BaggageRule, error)
	BulkInsertBaggageRules(ctx context.Context, rules []model.BaggageRule) error
}

// CountryRepository defines operations for countries
type CountryRepository interface {
	ListCountries(ctx context.Context) ([]model.Country, error)
	BulkInsertCountries(ctx context.Context, countries []model.Country) error
}

// SuitcaseRepository defines operations for the product catalogue
type SuitcaseRepository interface {
	ListSuitcases(ctx context.Context) ([]model.CatalogSuitcase, error)
	BulkInsertSuitcases(ctx context.Context, suitcases []model.CatalogSuitcase) error
}

// TableRepository defines maintenance operations over all reference tables
type TableRepository interface {
	Clear(ctx context.Context) error
	CountRows(ctx context.Context) (map[string]int64, error)
}

// Container holds all repositories
type Container struct {
	Airline     AirlineRepository
	BaggageRule BaggageRuleRepository
	Country     CountryRepository
	Suitcase    SuitcaseRepository
	Tables      TableRepository

	db        *sqlx.DB
	dbType    config.DBType
	chunkSize int
}

// NewRepositories creates repository implementations based on DB type.
// batchSize bounds the rows per insert statement; zero picks a default.
func NewRepositories(db *sqlx.DB, dbType config.DBType, batchSize int) *Container {
	chunkSize := sqliteChunkSize(batchSize)
	if dbType == config.DBTypePostgreSQL {
		chunkSize = pgChunkSize(batchSize)
	}

	c := newContainer(db, dbType, chunkSize)
	c.db = db
	return c
}

func newContainer(ext sqlx.ExtContext, dbType config.DBType, chunkSize int) *Container {
	w := writer{ext: ext, chunkSize: chunkSize}
	c := &Container{
		Airline:     &airlineRepository{w},
		BaggageRule: &baggageRuleRepository{w},
		Country:     &countryRepository{w},
		Suitcase:    &suitcaseRepository{w},
		dbType:      dbType,
		chunkSize:   chunkSize,
	}

	if dbType == config.DBTypePostgreSQL {
		c.Tables = &pgTableRepository{w}
	} else {
		// Default to SQLite
		c.Tables = &sqliteTableRepository{w}
	}
	return c
}

// InTx runs fn with repositories bound to a single transaction. The
// transaction commits only when fn returns nil.
func (c *Container) InTx(ctx context.Context, fn func(tx *Container) error) error {
	if c.db == nil {
		return errors.New("repositories are not bound to a database")
	}

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(newContainer(tx, c.dbType, c.chunkSize)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// IsDatabaseEmpty reports whether no baggage rules have been imported.
// A missing schema counts as empty.
func IsDatabaseEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM baggage_rules")
	if err != nil {
		return true, nil
	}
	return count == 0, nil
}

func countRows(ctx context.Context, q sqlx.QueryerContext) (map[string]int64, error) {
	counts := make(map[string]int64, len(Tables))
	for _, table := range Tables {
		var n int64
		if err := sqlx.GetContext(ctx, q, &n, "SELECT COUNT(*) FROM "+table); err != nil {
			return nil, err
		}
		counts[table] = n
	}
	return counts, nil
}
