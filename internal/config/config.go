package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the process configuration. Values come from an optional
// TOML file and may be overridden by environment variables.
type Config struct {
	Port          string        `toml:"port"`
	DBDSN         string        `toml:"db_dsn"`
	SweepInterval time.Duration `toml:"sweep_interval"`
	PageSize      int           `toml:"page_size"`
	LogLevel      string        `toml:"log_level"`
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	return Config{
		Port:          "8080",
		DBDSN:         "card-auction.db",
		SweepInterval: time.Minute,
		PageSize:      10,
		LogLevel:      "info",
	}
}

// Load reads the TOML file at path (skipped when path is empty or the
// file does not exist) and then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = p
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DBDSN = dsn
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
