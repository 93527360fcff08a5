package source

import (
	"context"
	"fmt"

	"github.com/alexivanou/carryon-checker/internal/catalog"
	"github.com/alexivanou/carryon-checker/internal/repository"
	"go.uber.org/zap"
)

// Reload loads a fresh dataset and installs it in store. On failure the
// store keeps whatever it held before.
func Reload(ctx context.Context, loader Loader, store *catalog.Store, logger *zap.Logger) (*catalog.Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tables, err := loader.Load(ctx)
	if err != nil {
		logger.Error("Failed to load reference data", zap.Error(err))
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	ds := tables.Dataset()
	store.Replace(ds)

	logger.Info("Reference data loaded",
		zap.Int("airlines", len(tables.Airlines)),
		zap.Int("rules", len(tables.Rules)),
		zap.Int("countries", len(tables.Countries)),
		zap.Int("suitcases", len(tables.Suitcases)),
	)
	if n := ds.DuplicateAirlines(); n > 0 {
		logger.Warn("Duplicate airline codes ignored", zap.Int("count", n))
	}
	if n := ds.DuplicateCountries(); n > 0 {
		logger.Warn("Duplicate country identifiers ignored", zap.Int("count", n))
	}

	return ds, nil
}

// Seed replaces the database content with tables. The clear and every
// insert share one transaction, so a failed seed leaves the previous
// content in place.
func Seed(ctx context.Context, tables *Tables, repos *repository.Container, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	return repos.InTx(ctx, func(tx *repository.Container) error {
		logger.Info("Clearing reference tables...")
		if err := tx.Tables.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear tables: %w", err)
		}

		logger.Info("Inserting airlines...")
		if err := tx.Airline.BulkInsertAirlines(ctx, tables.Airlines); err != nil {
			return fmt.Errorf("failed to insert airlines: %w", err)
		}

		logger.Info("Inserting baggage rules...")
		if err := tx.BaggageRule.BulkInsertBaggageRules(ctx, tables.Rules); err != nil {
			return fmt.Errorf("failed to insert baggage rules: %w", err)
		}

		logger.Info("Inserting countries...")
		if err := tx.Country.BulkInsertCountries(ctx, tables.Countries); err != nil {
			return fmt.Errorf("failed to insert countries: %w", err)
		}

		logger.Info("Inserting suitcases...")
		if err := tx.Suitcase.BulkInsertSuitcases(ctx, tables.Suitcases); err != nil {
			return fmt.Errorf("failed to insert suitcases: %w", err)
		}

		return nil
	})
}
