package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	Backend      string        `env:"BACKEND"       envDefault:"sqlite"`
	DBPath       string        `env:"DB_PATH"       envDefault:"db.sqlite"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
	LogLevel     slog.Level    `env:"LOG_LEVEL"     envDefault:"info"`
}

func LoadConfig() Config {
	var cfg Config
	env.Must(cfg, env.Parse(&cfg))
	return cfg
}

// Validate checks the rules env tags cannot express.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Backend)) {
	case BackendMemory:
	case BackendSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return errors.New("DB_PATH is empty")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required for postgres backend")
		}
	default:
		return fmt.Errorf("unknown backend (BACKEND = %s)", c.Backend)
	}

	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive (FETCH_TIMEOUT = %s)", c.FetchTimeout)
	}

	return nil
}
