package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdpchart/internal/dataset"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, dataset.DefaultURL, c.DataURL)
	assert.Equal(t, ":8000", c.Addr)
	assert.Equal(t, 1280, c.ViewportWidth)
}

func TestFromEnvOverrides(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{
		"GDPCHART_DATA_URL":       "http://localhost/gdp.json",
		"GDPCHART_ADDR":           ":9090",
		"GDPCHART_ENV":            "release",
		"GDPCHART_LOG_FILE":       "/tmp/gdp.log",
		"GDPCHART_VIEWPORT_WIDTH": "900",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{
		DataURL:       "http://localhost/gdp.json",
		Addr:          ":9090",
		Env:           "release",
		LogFile:       "/tmp/gdp.log",
		ViewportWidth: 900,
	}, c)
}

func TestFromEnvBadWidth(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"GDPCHART_VIEWPORT_WIDTH": "wide"}))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GDPCHART_ADDR=:7777\n"), 0o644))
	t.Setenv("GDPCHART_ADDR", "")
	os.Unsetenv("GDPCHART_ADDR")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7777", c.Addr)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
