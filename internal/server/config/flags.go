package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string           HTTP bind address (e.g., ":5000")
//	-driver string      storage driver: sqlite or postgres
//	-d string           sqlite path or PostgreSQL DSN
//	-s string           JWT HMAC secret
//	-log-level string   debug, info, warn or error
//	-log-format string  text or json
//	-c, -config string  JSON config file (read earlier by parseJSON)
//	-version            print version and exit
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.StorageDriver, "driver", config.StorageDriver, "storage driver (sqlite|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "JWT secret key")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format (text|json)")
	fs.BoolVar(&config.ShowVersion, "version", false, "show version information")

	// уже обработан в parseJSON
	var ignored string
	fs.StringVar(&ignored, "c", "", "JSON config file")
	fs.StringVar(&ignored, "config", "", "JSON config file")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
