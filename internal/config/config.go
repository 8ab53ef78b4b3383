package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "HERO_CONFIG"

type Config struct {
	Log   LogConfig   `toml:"log"`
	Store StoreConfig `toml:"store"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type StoreConfig struct {
	Path string `toml:"path"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  slog.LevelInfo,
			Format: "text",
		},
	}
}

// DefaultPath returns the config file location, honoring HERO_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".taskhero.toml"), nil
}

// Load reads the TOML config at path. A missing file is not an error: the
// defaults apply.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg := Default()
	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a slog.Logger per the [log] section, writing to stderr
// so command output on stdout stays clean.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     c.Log.Level,
		AddSource: c.Log.AddSource,
	}
	var handler slog.Handler
	if c.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// StorePath resolves the database location, preferring the config value.
func (c *Config) StorePath(fallback func() (string, error)) (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	return fallback()
}
