package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c := Default()

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "memory", c.Cache.Backend)
	assert.Equal(t, "none", c.Events.Backend)
	assert.Equal(t, 30, c.Seed.HistoryDays)
	assert.Equal(t, 172.3, c.Seed.BaseRate)
	assert.Equal(t, 24*time.Hour, c.Roller.Interval)
	assert.NoError(t, c.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
timezone: Asia/Tokyo
server:
  port: 9090
cache:
  backend: none
seed:
  history_days: 10
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "none", c.Cache.Backend)
	assert.Equal(t, 10, c.Seed.HistoryDays)
	assert.Equal(t, 3.0, c.Seed.Amplitude)

	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"bad port":         "server:\n  port: 0\n",
		"bad cache":        "cache:\n  backend: disk\n",
		"kafka no brokers": "events:\n  backend: kafka\n",
		"bad timezone":     "timezone: Mars/Olympus\n",
		"zero period":      "seed:\n  period: 0\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")

	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, c.Server.Port)
	assert.Equal(t, "cache.internal", c.Cache.Redis.Host)
	assert.Equal(t, 6380, c.Cache.Redis.Port)
	assert.Equal(t, []string{"a:9092", "b:9092"}, c.Events.Brokers)
}
