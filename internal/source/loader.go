package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexivanou/carryon-checker/internal/catalog"
	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/alexivanou/carryon-checker/internal/model"
	"github.com/alexivanou/carryon-checker/internal/repository"
	"github.com/alexivanou/carryon-checker/internal/seeder"
	"github.com/alexivanou/carryon-checker/internal/tsv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Tables is one complete read of the reference tables
type Tables struct {
	Airlines  []model.Airline
	Rules     []model.BaggageRule
	Countries []model.Country
	Suitcases []model.CatalogSuitcase
}

// Dataset indexes the tables for evaluation
func (t *Tables) Dataset() *catalog.Dataset {
	return catalog.NewDataset(t.Airlines, t.Rules, t.Countries, t.Suitcases)
}

// Loader reads all reference tables. A load either returns every
// required table or fails.
type Loader interface {
	Load(ctx context.Context) (*Tables, error)
}

// TextLoader decodes tab-separated tables provided by a Fetcher
type TextLoader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// NewTextLoader creates a loader over fetcher
func NewTextLoader(fetcher Fetcher, logger *zap.Logger) *TextLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextLoader{fetcher: fetcher, logger: logger}
}

func (l *TextLoader) records(ctx context.Context, name string) ([]tsv.Record, error) {
	data, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return tsv.Parse(string(data)), nil
}

// Load fetches the three required tables and the optional suitcase
// catalogue concurrently. The first failure cancels the others.
func (l *TextLoader) Load(ctx context.Context) (*Tables, error) {
	var tables Tables
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := l.records(gctx, seeder.AirlinesFile)
		if err != nil {
			return fmt.Errorf("failed to load airlines: %w", err)
		}
		tables.Airlines = seeder.DecodeAirlines(records)
		return nil
	})

	g.Go(func() error {
		records, err := l.records(gctx, seeder.BaggageFile)
		if err != nil {
			return fmt.Errorf("failed to load baggage rules: %w", err)
		}
		tables.Rules = seeder.DecodeBaggageRules(records)
		return nil
	})

	g.Go(func() error {
		records, err := l.records(gctx, seeder.CountriesFile)
		if err != nil {
			return fmt.Errorf("failed to load countries: %w", err)
		}
		tables.Countries = seeder.DecodeCountries(records)
		return nil
	})

	g.Go(func() error {
		records, err := l.records(gctx, seeder.SuitcasesFile)
		if errors.Is(err, ErrNotFound) {
			l.logger.Debug("No suitcase catalogue", zap.Error(err))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load suitcases: %w", err)
		}
		tables.Suitcases = seeder.DecodeSuitcases(records)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &tables, nil
}

// RepositoryLoader reads tables previously imported into the database
type RepositoryLoader struct {
	repos *repository.Container
}

// NewRepositoryLoader creates a loader over repos
func NewRepositoryLoader(repos *repository.Container) *RepositoryLoader {
	return &RepositoryLoader{repos: repos}
}

func (l *RepositoryLoader) Load(ctx context.Context) (*Tables, error) {
	var tables Tables
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		tables.Airlines, err = l.repos.Airline.ListAirlines(gctx)
		if err != nil {
			return fmt.Errorf("failed to list airlines: %w", err)
		}
		return nil
	})

	g.Go(func() (err error) {
		tables.Rules, err = l.repos.BaggageRule.ListBaggageRules(gctx)
		if err != nil {
			return fmt.Errorf("failed to list baggage rules: %w", err)
		}
		return nil
	})

	g.Go(func() (err error) {
		tables.Countries, err = l.repos.Country.ListCountries(gctx)
		if err != nil {
			return fmt.Errorf("failed to list countries: %w", err)
		}
		return nil
	})

	g.Go(func() (err error) {
		tables.Suitcases, err = l.repos.Suitcase.ListSuitcases(gctx)
		if err != nil {
			return fmt.Errorf("failed to list suitcases: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &tables, nil
}

// NewLoader builds the loader selected by cfg. repos is only needed for
// the database source.
func NewLoader(cfg config.DataConfig, repos *repository.Container, logger *zap.Logger) (Loader, error) {
	switch cfg.Source {
	case config.SourceHTTP:
		client := &http.Client{Timeout: cfg.LoadTimeout}
		return NewTextLoader(NewHTTPFetcher(cfg.BaseURL, client), logger), nil
	case config.SourceDatabase:
		if repos == nil {
			return nil, errors.New("database source requires a database connection")
		}
		return NewRepositoryLoader(repos), nil
	default:
		return NewTextLoader(NewFileFetcher(cfg.Dir), logger), nil
	}
}
