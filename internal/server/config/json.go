package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// JSONConfig is the on-disk shape of the optional configuration file.
// Empty fields leave the current value untouched.
type JSONConfig struct {
	Address       string `json:"address"`
	StorageDriver string `json:"storage_driver"`
	DatabaseDSN   string `json:"database_dsn"`
	JWTSecret     string `json:"jwt_secret"`
	LogLevel      string `json:"log_level"`
	LogFormat     string `json:"log_format"`
}

// parseJSON loads configuration values from the file named by -c or -config.
// If neither flag is present, no file is loaded.
func parseJSON(config *Config, args []string) error {
	path := configPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var c JSONConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setIfNotEmpty(&config.Address, c.Address)
	setIfNotEmpty(&config.StorageDriver, c.StorageDriver)
	setIfNotEmpty(&config.DatabaseDSN, c.DatabaseDSN)
	setIfNotEmpty(&config.JWTSecret, c.JWTSecret)
	setIfNotEmpty(&config.LogLevel, c.LogLevel)
	setIfNotEmpty(&config.LogFormat, c.LogFormat)

	return nil
}

// configPath ищет -c/-config в аргументах до разбора остальных флагов.
// Поддерживаются формы "-c path", "-c=path", "--config path".
func configPath(args []string) string {
	for i := 0; i < len(args); i++ {
		name, value, hasValue := strings.Cut(strings.TrimLeft(args[i], "-"), "=")
		if !strings.HasPrefix(args[i], "-") || (name != "c" && name != "config") {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
