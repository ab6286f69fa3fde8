package main

import (
	"io"
	"log/slog"
	"testing"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"--tui", "--config", "c.yaml", "--log-level", "debug"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !opts.tui || opts.configPath != "c.yaml" || opts.logLevel != "debug" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestParseFlagsRejectsPositional(t *testing.T) {
	if _, err := parseFlags([]string{"extra"}, io.Discard); err == nil {
		t.Fatal("expected error for positional argument")
	}
	if _, err := parseFlags([]string{"--nope"}, io.Discard); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestParseLogLevel(t *testing.T) {
	for input, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := parseLogLevel(input)
		if err != nil {
			t.Fatalf("parseLogLevel(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("parseLogLevel(%q): want %v, got %v", input, want, got)
		}
	}
	if _, err := parseLogLevel("loud"); err == nil {
		t.Fatal("expected error")
	}
}
