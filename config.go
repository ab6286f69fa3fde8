// config.go loads the optional YAML configuration file.
//
// The file is given by --config or the GOTODO_CONFIG environment variable.
// With neither set, defaults are used. Unknown keys are an error.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// configEnvVar names the environment variable consulted when --config is
// not given.
const configEnvVar = "GOTODO_CONFIG"

// Config is the full gotodo configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// DefaultFilter is the filter the TUI opens with.
	DefaultFilter string `yaml:"default_filter"`

	// Seed is the task every session starts with.
	Seed SeedConfig `yaml:"seed"`
}

// SeedConfig describes the welcome task.
type SeedConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		DefaultFilter: string(StatusAll),
		Seed: SeedConfig{
			Title:       welcomeTitle,
			Description: welcomeDescription,
		},
	}
}

// LoadConfig reads path (or $GOTODO_CONFIG if path is empty) over the
// defaults. No path at all yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field that has a restricted value set.
func (c Config) Validate() error {
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := ParseStatus(c.DefaultFilter); err != nil {
		return fmt.Errorf("default_filter: %w", err)
	}
	if strings.TrimSpace(c.Seed.Title) == "" {
		return errors.New("seed.title must not be empty")
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
