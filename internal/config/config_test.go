package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()

	prev, ok := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))

	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, prev)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "defects")

	path := writeConfig(t, `
env: dev
postgres:
  host: db
  max_open_conns: 20
server:
  port: "9090"
cache:
  ttl: 1m
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, 20, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 5, cfg.Postgres.MaxIdleConns)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1024, cfg.Cache.Size)
	assert.Equal(t, "postgres://postgres:secret@db:5432/defects?sslmode=disable&connect_timeout=2", cfg.Postgres.DSN())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("CONFIG_PATH unset", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")

		_, err := Load()
		assert.EqualError(t, err, "CONFIG_PATH is not set")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPath(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "config file does not exist")
	})

	t.Run("missing required credentials", func(t *testing.T) {
		for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB"} {
			unsetEnv(t, key)
		}

		_, err := LoadPath(writeConfig(t, "env: local\n"))
		assert.ErrorContains(t, err, "cannot read config")
	})
}
