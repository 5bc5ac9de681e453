package factory

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	v, err := NewViper("")
	require.NoError(t, err)

	settings, err := LoadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, StorageTypeMemory, settings.App.StorageType)
	assert.Nil(t, settings.App.RedisConfig)
	assert.Equal(t, "data/words.txt", settings.App.DictionaryPath)
	assert.Empty(t, settings.App.RulesPath)
	assert.Equal(t, 8080, settings.Server.Port)
	assert.Equal(t, "info", settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("FROGFEN_STORAGE_TYPE", "redis")
	t.Setenv("FROGFEN_REDIS_URL", "redis://cache:6379/1")
	t.Setenv("FROGFEN_REDIS_SESSION_TTL", "2h")
	t.Setenv("FROGFEN_SERVER_PORT", "9090")

	v, err := NewViper("")
	require.NoError(t, err)

	settings, err := LoadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, StorageTypeRedis, settings.App.StorageType)
	require.NotNil(t, settings.App.RedisConfig)
	assert.Equal(t, "redis://cache:6379/1", settings.App.RedisConfig.URL)
	assert.Equal(t, 2*time.Hour, settings.App.RedisConfig.SessionTTL)
	assert.Equal(t, 10, settings.App.RedisConfig.PoolSize)
	assert.Equal(t, 9090, settings.Server.Port)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frogfen.yaml")
	content := []byte("dictionary:\n  path: /srv/words.txt\nserver:\n  port: 7000\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	v, err := NewViper(path)
	require.NoError(t, err)

	settings, err := LoadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "/srv/words.txt", settings.App.DictionaryPath)
	assert.Equal(t, 7000, settings.Server.Port)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestLoadConfigAllowsFreePort(t *testing.T) {
	v, err := NewViper("")
	require.NoError(t, err)
	v.Set("server.port", 0)

	settings, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 0, settings.Server.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown storage", map[string]string{"FROGFEN_STORAGE_TYPE": "postgres"}},
		{"port out of range", map[string]string{"FROGFEN_SERVER_PORT": "70000"}},
		{"negative port", map[string]string{"FROGFEN_SERVER_PORT": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, val := range tt.env {
				t.Setenv(k, val)
			}
			v, err := NewViper("")
			require.NoError(t, err)

			_, err = LoadConfig(v)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "session_id", "ABC")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"session_id":"ABC"`)
}

func TestNewLoggerInvalid(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", "json")
	assert.Error(t, err)

	_, err = NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(Config{StorageType: "postgres"})
	assert.Error(t, err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewMemoryApp(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, 11, app.Rules.BoardSize)
	assert.NoError(t, app.Close())
}
