package testdb

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"matchday/internal/config"
	"matchday/internal/lib/migrator"
	"matchday/internal/storage"
)

// New returns a migrated sqlite database living in the test's temp dir.
// Teams and matches come from the seed migration.
func New(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := config.StorageConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "matchday.db"),
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migrator.RunMigrations(cfg, log))

	db, err := storage.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}
