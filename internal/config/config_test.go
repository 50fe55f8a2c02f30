package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheets/internal/config"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "rpg-sheets.db", cfg.DatabasePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.StatOptionsFile)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"RPG_SHEETS_GRPC_PORT":         "9090",
		"RPG_SHEETS_DATABASE_PATH":     ":memory:",
		"RPG_SHEETS_REDIS_DB":          "3",
		"RPG_SHEETS_SESSION_TTL":       "90m",
		"RPG_SHEETS_LOG_FORMAT":        "console",
		"RPG_SHEETS_STAT_OPTIONS_FILE": "/etc/rpg-sheets/stats.yaml",
		"GRPC_PORT":                    "1",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.Equal(t, ":memory:", cfg.DatabasePath)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "/etc/rpg-sheets/stats.yaml", cfg.StatOptionsFile)
}

func TestLoadFrom_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		vars map[string]string
	}{
		{"port out of range", map[string]string{"RPG_SHEETS_GRPC_PORT": "70000"}},
		{"port not a number", map[string]string{"RPG_SHEETS_GRPC_PORT": "abc"}},
		{"blank database path", map[string]string{"RPG_SHEETS_DATABASE_PATH": " "}},
		{"zero session ttl", map[string]string{"RPG_SHEETS_SESSION_TTL": "0s"}},
		{"bcrypt cost too low", map[string]string{"RPG_SHEETS_BCRYPT_COST": "1"}},
		{"unknown log level", map[string]string{"RPG_SHEETS_LOG_LEVEL": "verbose"}},
		{"unknown log format", map[string]string{"RPG_SHEETS_LOG_FORMAT": "xml"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFrom(tc.vars)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("RPG_SHEETS_GRPC_PORT", "6000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.GRPCPort)
}
