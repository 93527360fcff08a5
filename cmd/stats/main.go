package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/alexivanou/carryon-checker/internal/catalog"
	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/alexivanou/carryon-checker/internal/database"
	"github.com/alexivanou/carryon-checker/internal/repository"
	"github.com/alexivanou/carryon-checker/internal/source"
	"github.com/alexivanou/carryon-checker/internal/stats"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	// The database is only attached when it is the data source
	var db *sqlx.DB
	var repos *repository.Container
	if cfg.Data.Source == config.SourceDatabase {
		db, err = database.Connect(ctx, cfg.DB)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		repos = repository.NewRepositories(db, cfg.DB.Type, cfg.Seeder.BatchSize)
	}

	loader, err := source.NewLoader(cfg.Data, repos, logger)
	if err != nil {
		logger.Fatal("Failed to create loader", zap.Error(err))
	}

	store := catalog.NewStore()
	loadCtx, cancel := context.WithTimeout(ctx, cfg.Data.LoadTimeout)
	if _, err := source.Reload(loadCtx, loader, store, logger); err != nil {
		logger.Warn("Reporting without reference data", zap.Error(err))
	}
	cancel()

	logger.Info("Collecting statistics...", zap.String("source", string(cfg.Data.Source)))

	collector := stats.NewCollector(store, db, cfg.DB)

	statistics, err := collector.Collect(ctx)
	if err != nil {
		logger.Fatal("Failed to collect statistics", zap.Error(err))
	}

	outputFormat := os.Getenv("OUTPUT_FORMAT")
	if outputFormat == "" {
		outputFormat = "json"
	}

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(statistics); err != nil {
			logger.Fatal("Failed to encode statistics", zap.Error(err))
		}
	case "text", "human":
		printHumanReadable(statistics)
	default:
		logger.Fatal("Unknown output format", zap.String("format", outputFormat))
	}
}

func printHumanReadable(s *stats.Stats) {
	fmt.Println("=== Application Statistics ===")
	fmt.Printf("Timestamp: %s\n", s.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Println()

	fmt.Println("--- Memory Statistics ---")
	fmt.Printf("Allocated:        %s\n", formatBytes(s.Memory.Alloc))
	fmt.Printf("Total Allocated:  %s\n", formatBytes(s.Memory.TotalAlloc))
	fmt.Println()

	fmt.Println("--- Reference Data ---")
	d := s.Dataset
	if !d.Loaded {
		fmt.Println("Not loaded")
	} else {
		fmt.Printf("Loaded at:       %s\n", d.LoadedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Airlines:        %d (%d duplicate)\n", d.Airlines, d.DuplicateAirlines)
		fmt.Printf("Rules:           %d (%d orphan, %d invalid)\n", d.Rules, d.OrphanRules, d.InvalidRules)
		fmt.Printf("Countries:       %d (%d duplicate, %d unresolved)\n", d.Countries, d.DuplicateCountries, d.UnresolvedCountry)
		fmt.Printf("Suitcases:       %d\n", d.Suitcases)
		for _, routeType := range []string{"domestic", "international", "unspecified"} {
			if n := d.RulesByRouteType[routeType]; n > 0 {
				fmt.Printf("  %-25s: %10d rules\n", routeType, n)
			}
		}
	}
	fmt.Println()

	if s.Database != nil {
		fmt.Println("--- Database Statistics ---")
		fmt.Printf("Type:            %s\n", s.Database.Type)
		fmt.Printf("Total Records:   %d\n", s.Database.TotalRecords)
		fmt.Println()
		fmt.Println("Table Statistics:")
		for _, ts := range s.Database.TableStats {
			fmt.Printf("  %-25s: %10d rows", ts.Name, ts.RowCount)
			if ts.SizeBytes > 0 {
				fmt.Printf(" (%s)", formatBytes(uint64(ts.SizeBytes)))
			}
			fmt.Println()
		}
		fmt.Println()
	}

	fmt.Println("--- Runtime Statistics ---")
	fmt.Printf("Goroutines:      %d\n", s.Runtime.NumGoroutines)
	fmt.Printf("Uptime:          %ds\n", s.Runtime.UptimeSeconds)
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
