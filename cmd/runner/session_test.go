package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/dash-runner/internal/config"
)

func TestLoadRunnerConfigPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := loadRunnerConfig("", "fixed")
	if err != nil {
		t.Fatalf("loadRunnerConfig() failed: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the ramp")
	}

	cfg, err = loadRunnerConfig("", "")
	if err != nil {
		t.Fatalf("loadRunnerConfig() failed: %v", err)
	}
	if cfg != config.DefaultRunnerConfig() {
		t.Error("no preset should keep the loaded config")
	}

	if _, err := loadRunnerConfig("", "insane"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("unknown preset error = %v, expected ErrInvalidConfig", err)
	}
}

func TestOpenLoggerDisabled(t *testing.T) {
	logger, closer, err := openLogger("", false)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	if closer != nil {
		t.Error("disabled logger should not open a file")
	}
	logger.Info("discarded")
}

func TestOpenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "runner.log")

	logger, closer, err := openLogger(path, true)
	if err != nil {
		t.Fatalf("openLogger() failed: %v", err)
	}
	logger.Debug("run ended", "score", 12)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "runner") || !strings.Contains(out, "score=12") {
		t.Errorf("log file missing entry: %q", out)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandHome("~/.runner/best.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".runner", "best.db") {
		t.Errorf("expandHome() = %q", got)
	}

	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
}
