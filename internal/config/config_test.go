package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults when no file exists", func(t *testing.T) {
		// Given: a path with no config file
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.False(t, conf.NoClear)
		assert.Equal(t, ScoreStoreMemory, conf.ScoreStore)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("NO_CLEAR", "true")

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.NoClear)
	})

	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file selecting the Redis store
		path := writeConfig(t, `
log-level: info
no-clear: true
score-store: redis
redis:
  host: cache
  port: "6380"
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.True(t, conf.NoClear)
		assert.Equal(t, ScoreStoreRedis, conf.ScoreStore)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Rejects unknown score store", func(t *testing.T) {
		path := writeConfig(t, "score-store: postgres\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("Rejects unknown log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")

		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "log-level: loud\n")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
