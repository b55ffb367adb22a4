package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"time"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"

	SessionStoreMemory = "memory"
	SessionStoreSQL    = "sql"
)

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	Server  HTTPServer    `yaml:"http_server" env-prefix:"SERVER_"`
	Storage StorageConfig `yaml:"storage" env-prefix:"DB_"`
	Session SessionConfig `yaml:"session" env-prefix:"SESSION_"`
	Auth    AuthConfig    `yaml:"auth" env-prefix:"AUTH_"`
}

type HTTPServer struct {
	Port        string        `yaml:"port" env:"PORT" env-default:"5000"`
	Timeout     time.Duration `yaml:"timeout" env:"TIMEOUT" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT" env-default:"60s"`
}

// StorageConfig selects the SQL backend. Path is used by sqlite3, the
// remaining fields by postgres.
type StorageConfig struct {
	Driver   string `yaml:"driver" env:"DRIVER" env-default:"sqlite3"`
	Path     string `yaml:"path" env:"PATH" env-default:"data.db"`
	Host     string `yaml:"host" env:"HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"PORT" env-default:"5432"`
	User     string `yaml:"user" env:"USER" env-default:"postgres"`
	Password string `yaml:"password" env:"PASSWORD" env-default:"postgres"`
	DbName   string `yaml:"dbname" env:"DBNAME" env-default:"matchday"`
	SslMode  string `yaml:"sslmode" env:"SSLMODE" env-default:"disable"`
}

type SessionConfig struct {
	Store           string        `yaml:"store" env:"STORE" env-default:"memory"`
	CookieName      string        `yaml:"cookie_name" env:"COOKIE_NAME" env-default:"matchday_session"`
	Lifetime        time.Duration `yaml:"lifetime" env:"LIFETIME" env-default:"24h"`
	Secure          bool          `yaml:"secure" env:"SECURE" env-default:"false"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"CLEANUP_INTERVAL" env-default:"10m"`
}

type AuthConfig struct {
	BcryptCost int     `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
	RateLimit  float64 `yaml:"rate_limit" env:"RATE_LIMIT" env-default:"5"`
	RateBurst  int     `yaml:"rate_burst" env:"RATE_BURST" env-default:"10"`
}

// Load reads the config file at path (if any) and then the environment,
// which takes precedence.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}

	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreSQL:
	default:
		return fmt.Errorf("unsupported session store %q", c.Session.Store)
	}

	if c.Session.Lifetime <= 0 {
		return fmt.Errorf("session lifetime must be positive, got %s", c.Session.Lifetime)
	}

	if c.Session.CleanupInterval <= 0 {
		return fmt.Errorf("session cleanup interval must be positive, got %s", c.Session.CleanupInterval)
	}

	return nil
}
