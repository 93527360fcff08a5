package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexivanou/carryon-checker/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsPath(t *testing.T) {
	assert.Equal(t, filepath.Join("migrations", "sqlite"), MigrationsPath("migrations", config.DBTypeMemory))
	assert.Equal(t, filepath.Join("migrations", "postgres"), MigrationsPath("migrations", config.DBTypePostgreSQL))
}

func TestMigrator(t *testing.T) {
	cfg := config.DBConfig{Type: config.DBTypeMemory, Name: "migrator_test"}
	db, err := Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db, cfg.Type, "../../migrations"))
	require.NoError(t, Migrate(db, cfg.Type, "../../migrations"), "no change is not an error")

	m, err := NewMigrator(db, cfg.Type, "../../migrations")
	require.NoError(t, err)

	v, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), v)
	assert.False(t, dirty)

	require.NoError(t, m.Down())
	_, _, err = m.Version()
	assert.ErrorIs(t, err, migrate.ErrNilVersion)

	var n int
	err = db.Get(&n, "SELECT COUNT(*) FROM baggage_rules")
	assert.Error(t, err, "tables are dropped")
}

func TestMigrator_MissingDir(t *testing.T) {
	cfg := config.DBConfig{Type: config.DBTypeMemory, Name: "migrator_missing_test"}
	db, err := Connect(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = NewMigrator(db, cfg.Type, t.TempDir())
	assert.Error(t, err)
}
