package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := LoadConfig()

	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.True(t, cfg.MouseEnabled)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout())

	_, err := os.Stat(filepath.Join(home, ".launch-browser", ConfigFileName))
	assert.NoError(t, err, "default config should be written on first load")
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Endpoint = "http://localhost:8080/launches"
	cfg.RequestTimeoutSeconds = 15
	cfg.MouseEnabled = false
	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, "http://localhost:8080/launches", loaded.Endpoint)
	assert.Equal(t, 15*time.Second, loaded.RequestTimeout())
	assert.False(t, loaded.MouseEnabled)
}

func TestLoadConfigFillsMissingFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".launch-browser")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"request_timeout_seconds": 3}`), 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 10, cfg.LogMaxSize)
}

func TestLoadConfigFallsBackOnCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".launch-browser")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{not json`), 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		timeout  int
		wantErr  bool
	}{
		{name: "default", endpoint: DefaultEndpoint},
		{name: "http", endpoint: "http://127.0.0.1:9000/v3/launches"},
		{name: "no scheme", endpoint: "api.spacexdata.com/v3/launches", wantErr: true},
		{name: "ftp", endpoint: "ftp://example.com/launches", wantErr: true},
		{name: "no host", endpoint: "https:///launches", wantErr: true},
		{name: "negative timeout", endpoint: DefaultEndpoint, timeout: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Endpoint = tt.endpoint
			cfg.RequestTimeoutSeconds = tt.timeout

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLogConfigMirrorsFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogsDir = "/var/log/launch-browser"
	cfg.LogMaxFiles = 2

	logCfg := cfg.LogConfig()
	assert.Equal(t, "/var/log/launch-browser", logCfg.LogsDir)
	assert.Equal(t, 2, logCfg.LogMaxFiles)
	assert.Equal(t, cfg.LogsEnabled, logCfg.LogsEnabled)
}
