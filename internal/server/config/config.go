// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Поддерживаемые драйверы хранилища
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime settings for the task tracker server.
//
// Fields:
//   - Address: bind address of the HTTP API.
//   - StorageDriver: "sqlite" or "postgres".
//   - DatabaseDSN: sqlite file path or PostgreSQL DSN (pgx).
//   - JWTSecret: HMAC secret for signing tokens (HS256).
//   - LogLevel / LogFormat: slog level name and "text" or "json".
//   - ShowVersion: print build information and exit.
type Config struct {
	Address       string
	StorageDriver string
	DatabaseDSN   string
	JWTSecret     string
	LogLevel      string
	LogFormat     string
	ShowVersion   bool
}

// LoadDefaults populates Config with development defaults.
// JWTSecret is left empty so the server refuses to start without one.
func (c *Config) LoadDefaults() {
	c.Address = ":5000"
	c.StorageDriver = DriverSQLite
	c.DatabaseDSN = "tasktracker.db"
	c.JWTSecret = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Load builds a Config by applying defaults, then overlaying values from an
// optional JSON file, the environment and finally command-line flags.
// The result is not validated; call Validate before using it.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	parseEnv(cfg, getenv)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig вызывает Load с аргументами и окружением процесса
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.Getenv)
}

// Validate проверяет, что конфигурация пригодна для запуска
func (c *Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is required (JWT_SECRET or -s)"))
	}
	switch c.StorageDriver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.StorageDriver))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is required"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// SlogLevel разбирает LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
