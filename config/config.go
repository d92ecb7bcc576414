package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	Env         string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	DBPath      string `env:"DB_PATH" envDefault:":memory:"`
	RateLimit   int    `env:"RATE_LIMIT" envDefault:"200"`
	SeedData    bool   `env:"SEED_DATA" envDefault:"true"`
}

var AppConfig *Config

// Load reads an optional .env file, then the environment, into AppConfig
func Load() error {
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

// Parse builds a Config from the environment alone
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverSQLite:
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMemory, DriverSQLite, cfg.StoreDriver)
	}

	if cfg.RateLimit < 1 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive, got %d", cfg.RateLimit)
	}

	return &cfg, nil
}

// IsProduction reports whether the app runs in production mode
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}
