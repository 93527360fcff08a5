package stats

import (
	"context"
	"testing"

	"github.com/alexivanou/carryon-checker/internal/catalog"
	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/alexivanou/carryon-checker/internal/database"
	"github.com/alexivanou/carryon-checker/internal/model"
	"github.com/alexivanou/carryon-checker/internal/seeder"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	cfg := config.DBConfig{Type: config.DBTypeMemory, Name: "stats_test"}
	db, err := database.Connect(context.Background(), cfg)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db, cfg.Type, "../../migrations"))
	return db
}

func testStore() *catalog.Store {
	store := catalog.NewStore()
	store.Replace(catalog.NewDataset(
		[]model.Airline{
			{ICAO: "ANA", Country: "Japan"},
			{ICAO: "ANA", Country: "Japan"},
			{ICAO: "XXX", Country: "Atlantis"},
		},
		[]model.BaggageRule{
			seeder.NewBaggageRule("ANA", "国内", "100席以上", "55", "40", "25", "115", "10"),
			seeder.NewBaggageRule("ANA", "国際", "-", "55", "40", "25", "N/A", "N/A"),
			seeder.NewBaggageRule("NOPE", "-", "-", "invalid", "40", "25", "N/A", "N/A"),
		},
		[]model.Country{{ID: "Japan"}},
		nil,
	))
	return store
}

func TestCollector_Dataset(t *testing.T) {
	collector := NewCollector(testStore(), nil, config.DBConfig{})

	stats, err := collector.Collect(context.Background())
	require.NoError(t, err)

	d := stats.Dataset
	assert.True(t, d.Loaded)
	require.NotNil(t, d.LoadedAt)
	assert.Equal(t, 3, d.Airlines)
	assert.Equal(t, 3, d.Rules)
	assert.Equal(t, 1, d.Countries)
	assert.Equal(t, 0, d.Suitcases)
	assert.Equal(t, 1, d.DuplicateAirlines)
	assert.Equal(t, 1, d.OrphanRules)
	assert.Equal(t, 1, d.InvalidRules)
	// Both ANA rows point at Japan; only XXX is unresolved
	assert.Equal(t, 1, d.UnresolvedCountry)
	assert.Equal(t, map[string]int{"domestic": 1, "international": 1, "unspecified": 1}, d.RulesByRouteType)

	assert.Nil(t, stats.Database)
	assert.Greater(t, stats.Memory.Alloc, uint64(0))
	assert.GreaterOrEqual(t, stats.Runtime.NumGoroutines, 1)
}

func TestCollector_NotLoaded(t *testing.T) {
	collector := NewCollector(catalog.NewStore(), nil, config.DBConfig{})

	stats, err := collector.Collect(context.Background())
	require.NoError(t, err)
	assert.False(t, stats.Dataset.Loaded)
	assert.Nil(t, stats.Dataset.LoadedAt)
	assert.Empty(t, stats.Dataset.RulesByRouteType)
}

func TestCollector_Database(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO airlines (icao, country) VALUES ('ANA', 'Japan')")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO baggage_rules (icao, width, height, depth) VALUES ('ANA', '55', '40', '25')")
	require.NoError(t, err)

	cfg := config.DBConfig{Type: config.DBTypeMemory}
	collector := NewCollector(testStore(), db, cfg)

	stats, err := collector.Collect(ctx)
	require.NoError(t, err)
	require.NotNil(t, stats.Database)

	assert.Equal(t, "memory", stats.Database.Type)
	assert.Equal(t, int64(2), stats.Database.TotalRecords)

	rows := map[string]int64{}
	for _, ts := range stats.Database.TableStats {
		rows[ts.Name] = ts.RowCount
	}
	assert.Equal(t, map[string]int64{"airlines": 1, "baggage_rules": 1, "countries": 0, "suitcases": 0}, rows)

	stats2, err := collector.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.Memory.Alloc, stats2.Memory.Alloc)
}
