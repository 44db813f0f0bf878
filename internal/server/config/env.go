package config

// Переменные окружения
const (
	EnvPort          = "PORT"
	EnvJWTSecret     = "JWT_SECRET"
	EnvDatabaseDSN   = "DATABASE_DSN"
	EnvStorageDriver = "STORAGE_DRIVER"
	EnvLogLevel      = "LOG_LEVEL"
)

// parseEnv переносит заданные переменные окружения в config.
// PORT задает только порт, адрес слушается на всех интерфейсах.
func parseEnv(config *Config, getenv func(string) string) {
	if port := getenv(EnvPort); port != "" {
		config.Address = ":" + port
	}
	setIfNotEmpty(&config.JWTSecret, getenv(EnvJWTSecret))
	setIfNotEmpty(&config.DatabaseDSN, getenv(EnvDatabaseDSN))
	setIfNotEmpty(&config.StorageDriver, getenv(EnvStorageDriver))
	setIfNotEmpty(&config.LogLevel, getenv(EnvLogLevel))
}
