package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); !errors.Is(err, ErrLevel) {
		t.Fatalf("err = %v, want ErrLevel", err)
	}
}

func TestConfig(t *testing.T) {
	cfg, err := Config(
		WithLevel("debug"),
		WithFields(map[string]any{"cmd": "polar", "": "dropped"}),
		WithOutput("stdout"),
	)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Level.Level() != zapcore.DebugLevel {
		t.Fatalf("level = %v", cfg.Level.Level())
	}
	if cfg.Encoding != "json" {
		t.Fatalf("encoding = %q", cfg.Encoding)
	}
	if len(cfg.InitialFields) != 1 || cfg.InitialFields["cmd"] != "polar" {
		t.Fatalf("fields = %v", cfg.InitialFields)
	}
	if len(cfg.OutputPaths) != 1 || cfg.OutputPaths[0] != "stdout" {
		t.Fatalf("outputs = %v", cfg.OutputPaths)
	}
}

func TestDevelopmentKeepsLevel(t *testing.T) {
	cfg, err := Config(WithLevel("warn"), WithDevelopment(true))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Encoding != "console" || !cfg.Development {
		t.Fatalf("encoding = %q development = %v", cfg.Encoding, cfg.Development)
	}
	if cfg.Level.Level() != zapcore.WarnLevel {
		t.Fatalf("level = %v", cfg.Level.Level())
	}
}

func TestConfigRejectsBadLevel(t *testing.T) {
	if _, err := New(WithLevel("verbose")); !errors.Is(err, ErrLevel) {
		t.Fatalf("err = %v", err)
	}
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	log, err := New(WithOutput(path), WithFields(map[string]any{"cmd": "fdtd"}))
	if err != nil {
		t.Fatal(err)
	}
	log.Debug("hidden")
	log.Info("frame", zap.Int("step", 6))
	Sync(log)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry written at info level: %s", out)
	}
	for _, want := range []string{`"msg":"frame"`, `"step":6`, `"cmd":"fdtd"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log %s missing %s", out, want)
		}
	}
}
