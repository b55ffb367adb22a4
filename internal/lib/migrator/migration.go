package migrator

import (
	"embed"
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"log/slog"
	"matchday/internal/config"
	"matchday/internal/storage"
)

//go:embed migrations/sqlite3/*.sql migrations/postgres/*.sql
var fs embed.FS

// RunMigrations up migrations files from embed.FS - fs, picking the
// directory that matches the configured driver.
func RunMigrations(cfg config.StorageConfig, log *slog.Logger) error {
	const op = "migrator.RunMigrations"

	migrationDB, err := storage.Connect(cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to connect: %w", op, err)
	}
	defer migrationDB.Close()

	var driver database.Driver
	switch cfg.Driver {
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(migrationDB.DB, &postgres.Config{})
	default:
		driver, err = migratesqlite.WithInstance(migrationDB.DB, &migratesqlite.Config{})
	}
	if err != nil {
		return fmt.Errorf("%s: failed to create driver: %w", op, err)
	}

	source, err := iofs.New(fs, "migrations/"+cfg.Driver)
	if err != nil {
		return fmt.Errorf("%s: failed to create source: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Driver, driver)
	if err != nil {
		return fmt.Errorf("%s: failed to create migrate instance: %w", op, err)
	}
	defer m.Close()

	log.Info("applying database migrations", slog.String("driver", cfg.Driver))
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: migration failed: %w", op, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("%s: failed to read version: %w", op, err)
	}
	log.Info("database schema is up to date", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}
