package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gotodo.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(configEnvVar, "")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
default_filter: active
seed:
  title: "Read the manual"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" || cfg.DefaultFilter != "active" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Seed.Title != "Read the manual" {
		t.Fatalf("seed title: got %q", cfg.Seed.Title)
	}
	// Unset keys keep their defaults.
	if cfg.Seed.Description != welcomeDescription {
		t.Fatalf("seed description should keep default, got %q", cfg.Seed.Description)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := writeConfig(t, "default_filter: completed\n")
	t.Setenv(configEnvVar, path)
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultFilter != "completed" {
		t.Fatalf("expected env config to load, got %+v", cfg)
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("empty file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "colour: blue\n", "colour"},
		{"bad level", "log_level: loud\n", "log_level"},
		{"bad filter", "default_filter: someday\n", "default_filter"},
		{"blank seed", "seed:\n  title: \"  \"\n", "seed.title"},
		{"not yaml", "log_level: [\n", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Fatalf("expected read error, got %v", err)
	}
}
