package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"launch-browser/api"
	"launch-browser/log"

	"github.com/gofrs/flock"
)

const (
	ConfigFileName = "config.json"
	// LockFileName is the name of the lock file guarding config writes
	LockFileName = "config.lock"
	// DefaultLockTimeout is the default timeout for acquiring locks
	DefaultLockTimeout = 5 * time.Second

	DefaultEndpoint = api.DefaultEndpoint
)

// Config represents the application configuration
type Config struct {
	// Endpoint is the launch collection URL that pages are requested from.
	Endpoint string `json:"endpoint"`
	// RequestTimeoutSeconds bounds a single page request. Zero means no timeout.
	RequestTimeoutSeconds int `json:"request_timeout_seconds"`
	// MouseEnabled turns on mouse wheel scrolling in the list.
	MouseEnabled bool `json:"mouse_enabled"`

	LogsEnabled bool   `json:"logs_enabled"`
	LogsDir     string `json:"logs_dir,omitempty"`
	LogMaxSize  int    `json:"log_max_size"`
	LogMaxFiles int    `json:"log_max_files"`
	LogMaxAge   int    `json:"log_max_age"`
	LogCompress bool   `json:"log_compress"`
}

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	return log.GetConfigDir()
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	logCfg := log.DefaultLogConfig()
	return &Config{
		Endpoint:              DefaultEndpoint,
		RequestTimeoutSeconds: 0,
		MouseEnabled:          true,
		LogsEnabled:           logCfg.LogsEnabled,
		LogsDir:               logCfg.LogsDir,
		LogMaxSize:            logCfg.LogMaxSize,
		LogMaxFiles:           logCfg.LogMaxFiles,
		LogMaxAge:             logCfg.LogMaxAge,
		LogCompress:           logCfg.LogCompress,
	}
}

// RequestTimeout returns the configured request timeout, zero when disabled.
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// LogConfig converts the logging fields for the log package.
func (c *Config) LogConfig() *log.LogConfig {
	return &log.LogConfig{
		LogsEnabled: c.LogsEnabled,
		LogsDir:     c.LogsDir,
		LogMaxSize:  c.LogMaxSize,
		LogMaxFiles: c.LogMaxFiles,
		LogMaxAge:   c.LogMaxAge,
		LogCompress: c.LogCompress,
	}
}

// Validate checks the values that cannot be corrected silently.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", c.Endpoint)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds must not be negative, got %d", c.RequestTimeoutSeconds)
	}
	return nil
}

// LoadConfig loads the configuration from disk. If it cannot be done, we return the default configuration.
// A missing file is created with the defaults.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	cfg, err := loadFromPath(filepath.Join(configDir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to load config: %v", err)
		return DefaultConfig()
	}

	return cfg
}

// loadFromPath reads a config file, filling absent fields from the defaults.
func loadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk under an exclusive file lock
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := flock.New(filepath.Join(configDir, LockFileName))
	ctx, cancel := context.WithTimeout(context.Background(), DefaultLockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("could not acquire write lock within timeout")
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	// Write to a temporary file first to ensure atomicity
	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to atomically update config file: %w", err)
	}

	return nil
}
