package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/c2h5oh/datasize"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration for drivectl.
type Config struct {
	// KeyFile is the path to the service-account JSON key file.
	KeyFile string `yaml:"key_file"`

	// Scopes are the OAuth scopes to request. Empty means full Drive access.
	Scopes []string `yaml:"scopes"`

	// PageSize is the per-page size hint for listings (default: 10).
	PageSize int64 `yaml:"page_size"`

	// MaxPages caps how many pages a listing may follow (default: 1000).
	MaxPages int `yaml:"max_pages"`

	// ChunkSize is the resumable-upload chunk size, in datasize notation
	// ("8MB", "512KB"). Empty keeps the API client's default.
	ChunkSize string `yaml:"chunk_size"`

	// Log configures diagnostic output.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error" (default: "info").
	Level string `yaml:"level"`

	// Format is "text" or "json" (default: "text").
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		KeyFile:  "key.json",
		PageSize: 10,
		MaxPages: 1000,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns the default config file location, or "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "drivectl", "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty), applies
// DRIVECTL_* environment overrides, and validates the result. A missing
// file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DRIVECTL_KEY_FILE"); v != "" {
		c.KeyFile = v
	}
	if v := os.Getenv("DRIVECTL_PAGE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.PageSize = n
		}
	}
	if v := os.Getenv("DRIVECTL_MAX_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxPages = n
		}
	}
	if v := os.Getenv("DRIVECTL_CHUNK_SIZE"); v != "" {
		c.ChunkSize = v
	}
	if v := os.Getenv("DRIVECTL_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("DRIVECTL_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// Validate checks the configuration for values that would fail later in a
// less obvious place.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be positive, got %d", c.MaxPages)
	}
	if _, err := c.ChunkSizeBytes(); err != nil {
		return err
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", c.Log.Format)
	}
	return nil
}

// ChunkSizeBytes parses the configured chunk size. Zero means "use the API
// client's default".
func (c *Config) ChunkSizeBytes() (int, error) {
	if c.ChunkSize == "" {
		return 0, nil
	}
	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(c.ChunkSize)); err != nil {
		return 0, fmt.Errorf("invalid chunk_size %q: %w", c.ChunkSize, err)
	}
	return int(size.Bytes()), nil
}
