// Package config loads CLI settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvDBPath    = "TECHEDU_INTERVIEWS_DB"
	EnvLogLevel  = "TECHEDU_LOG_LEVEL"
	EnvLogFormat = "TECHEDU_LOG_FORMAT"
)

// Validation limits.
const (
	MinPageSize = 1
	MaxPageSize = 1000
)

// Config is the full CLI configuration.
type Config struct {
	DBPath         string        `yaml:"db_path"`
	PageSize       int           `yaml:"page_size"`
	EnterAnimation time.Duration `yaml:"enter_animation"`
	ExitAnimation  time.Duration `yaml:"exit_animation"`
	Logging        LoggingConfig `yaml:"logging"`
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Dir returns the directory holding the config file and the default database.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".techedu")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "interviews.yaml")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath:         filepath.Join(Dir(), "interviews.db"),
		PageSize:       5,
		EnterAnimation: time.Second,
		ExitAnimation:  300 * time.Millisecond,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads the config file at path over the defaults and applies
// environment overrides. An empty path means DefaultPath, which may be absent;
// an explicit path must exist.
func Load(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if v, ok := lookupEnv(EnvDBPath); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.PageSize < MinPageSize || c.PageSize > MaxPageSize {
		return fmt.Errorf("page_size must be between %d and %d, got %d", MinPageSize, MaxPageSize, c.PageSize)
	}
	if c.EnterAnimation < 0 {
		return fmt.Errorf("enter_animation must be >= 0, got %s", c.EnterAnimation)
	}
	if c.ExitAnimation < 0 {
		return fmt.Errorf("exit_animation must be >= 0, got %s", c.ExitAnimation)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
