package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-driver", "postgres", "-d", "postgres://db",
				"-s", "secret", "-log-level", "debug", "-log-format", "json", "-c", "ignored.json",
			},
			expected: &Config{
				Address:       "127.0.0.1:9090",
				StorageDriver: "postgres",
				DatabaseDSN:   "postgres://db",
				JWTSecret:     "secret",
				LogLevel:      "debug",
				LogFormat:     "json",
			},
		},
		{
			name:     "version",
			args:     []string{"-version"},
			expected: &Config{ShowVersion: true},
		},
		{
			name:    "unknown flag",
			args:    []string{"-t", "5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseEnv(t *testing.T) {
	env := map[string]string{
		EnvPort:          "5050",
		EnvJWTSecret:     "env-secret",
		EnvDatabaseDSN:   "postgres://env",
		EnvStorageDriver: "postgres",
		EnvLogLevel:      "warn",
	}

	config := &Config{LogFormat: "text"}
	parseEnv(config, func(k string) string { return env[k] })

	expected := &Config{
		Address:       ":5050",
		JWTSecret:     "env-secret",
		DatabaseDSN:   "postgres://env",
		StorageDriver: "postgres",
		LogLevel:      "warn",
		LogFormat:     "text",
	}
	assert.Empty(t, cmp.Diff(expected, config))
}
