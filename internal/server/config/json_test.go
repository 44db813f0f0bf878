package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"address":      "127.0.0.1:9000",
		"database_dsn": "tasks.db",
		"jwt_secret":   "my_secret_key",
		"log_format":   "json",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{StorageDriver: DriverSQLite, LogLevel: "info"}
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "127.0.0.1:9000", cfg.Address)
		assert.Equal(t, "tasks.db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.JWTSecret)
		assert.Equal(t, "json", cfg.LogFormat)
		// пустые поля файла не затирают текущие значения
		assert.Equal(t, DriverSQLite, cfg.StorageDriver)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{Address: ":1234"}
		require.NoError(t, parseJSON(cfg, []string{"-a", ":9999"}))
		assert.Equal(t, ":1234", cfg.Address)
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		err := parseJSON(&Config{}, []string{"-c", bad})
		assert.Error(t, err)
	})
}

func Test_configPath(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "short", args: []string{"-c", "a.json"}, want: "a.json"},
		{name: "long", args: []string{"-a", ":1", "-config", "b.json"}, want: "b.json"},
		{name: "equals", args: []string{"-config=c.json"}, want: "c.json"},
		{name: "double dash", args: []string{"--c", "d.json"}, want: "d.json"},
		{name: "missing value", args: []string{"-c"}, want: ""},
		{name: "absent", args: []string{"-a", ":1"}, want: ""},
		{name: "value that looks like the flag name", args: []string{"-d", "c"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configPath(tt.args))
		})
	}
}
