// Package config loads the environment-driven settings of the innkeeper
// CLI.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings read from the environment.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Driver returns the database driver and DSN selected by the
// configuration. DATABASE_URL (postgres) wins over SQLITE_PATH.
func (c *Config) Driver() (string, string, error) {
	switch {
	case c.DatabaseURL != "":
		return "postgres", c.DatabaseURL, nil
	case c.SQLitePath != "":
		return "sqlite", c.SQLitePath, nil
	}
	return "", "", fmt.Errorf("neither DATABASE_URL nor SQLITE_PATH is set")
}
