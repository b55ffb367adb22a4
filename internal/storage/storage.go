package storage

import (
	"fmt"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"matchday/internal/config"
)

type Storage struct {
	db *sqlx.DB
}

// DSN builds the driver specific connection string for cfg.
func DSN(cfg config.StorageConfig) string {
	if cfg.Driver == config.DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DbName, cfg.SslMode)
	}

	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL", cfg.Path)
}

// Connect opens and pings a pool for cfg.
func Connect(cfg config.StorageConfig) (*sqlx.DB, error) {
	const op = "storage.Connect"

	db, err := sqlx.Connect(cfg.Driver, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open db: %w", op, err)
	}

	// sqlite has a single writer.
	if cfg.Driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

func Init(cfg config.StorageConfig) *Storage {
	const op = "storage.Init"

	db, err := Connect(cfg)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	return &Storage{db: db}
}

func (s *Storage) GetDB() *sqlx.DB {
	return s.db
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
