package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[Database]
Addr     = "db:5432"
User     = "desa"
Database = "desa"
PoolSize = 7

[App]
Port      = 9000
SlowQuery = "1s"

[Auth]
JWTSecret = "from-file"
TokenTTL  = "2h"

[Cache]
MaxEntries = 64
TTL        = "30s"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "db:5432", cfg.Database.Addr)
	assert.Equal(t, 7, cfg.Database.PoolSize)
	assert.Equal(t, 3, cfg.Database.MaxRetries)
	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, time.Second, cfg.App.SlowQuery)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 64, cfg.Cache.MaxEntries)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[Auth]\nJWTSecret = \"x\"\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 200*time.Millisecond, cfg.App.SlowQuery)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		envDatabaseURL: "postgres://u:p@pg.internal:6432/village?sslmode=disable",
		envJWTSecret:   "from-env",
		envSentryDSN:   "https://key@sentry.example/1",
	}

	var cfg Config
	cfg.Database.PoolSize = 4
	cfg.Auth.JWTSecret = "from-file"

	require.NoError(t, cfg.applyEnv(func(key string) string { return env[key] }))

	assert.Equal(t, "pg.internal:6432", cfg.Database.Addr)
	assert.Equal(t, "u", cfg.Database.User)
	assert.Equal(t, "village", cfg.Database.Database)
	assert.Equal(t, 4, cfg.Database.PoolSize)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "https://key@sentry.example/1", cfg.Sentry.DSN)
}

func TestApplyEnv_BadURL(t *testing.T) {
	var cfg Config
	err := cfg.applyEnv(func(key string) string {
		if key == envDatabaseURL {
			return "mysql://nope"
		}
		return ""
	})
	assert.Error(t, err)
}
