package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/runner"
	"github.com/vovakirdan/dash-runner/internal/storage"
)

// session holds what every playing command sets up: logger, store and
// tuning. Close releases the store and the log file.
type session struct {
	logger  *log.Logger
	logFile io.Closer
	store   storage.Store
	cfg     config.RunnerConfig
}

// newSession opens logging and the best score store. The store is optional:
// when it cannot be opened, play continues without persistence.
func newSession() (*session, error) {
	logger, logFile, err := openLogger(flagLogPath, flagVerbose)
	if err != nil {
		return nil, err
	}

	s := &session{logger: logger, logFile: logFile}

	store, err := storage.Open(flagStore, storage.Options{
		Path:    flagDBPath,
		AppName: storage.DefaultAppName,
	})
	if err != nil {
		logger.Warn("could not open best score store", "backend", flagStore, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open best score store: %v\n", err)
	} else {
		s.store = store
	}

	return s, nil
}

// Close releases the store and the log file.
func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("closing store", "error", err)
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// best reads the stored best score for display. Failures read as 0.
func (s *session) best() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.Best()
	if err != nil {
		s.logger.Warn("reading best score", "error", err)
		return 0
	}
	return best
}

// newSim creates a simulation with the session's tuning and store.
func (s *session) newSim(seed int64) *runner.Sim {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []runner.Option{runner.WithLogger(s.logger)}
	if s.store != nil {
		opts = append(opts, runner.WithStore(s.store))
	}

	s.logger.Info("starting run", "seed", seed, "store", flagStore)
	return runner.New(s.cfg, seed, opts...)
}

// openLogger creates the file logger. An empty path discards all output,
// since the terminal belongs to Bubble Tea while playing.
func openLogger(path string, verbose bool) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), nil, nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, f, nil
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// loadRunnerConfig loads tuning and applies a difficulty preset.
// An empty preset leaves the loaded values as they are.
func loadRunnerConfig(path, preset string) (config.RunnerConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	p, err := config.ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	if p != "" {
		config.ApplyPreset(&cfg, p)
	}
	return cfg, nil
}

// runtimeConfig sizes the terminal shell from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// printResult shows the outcome of a session after the screen is restored.
func printResult(snap runner.Snapshot) {
	if snap.Ticks == 0 && snap.Score == 0 {
		return
	}
	fmt.Printf("Score: %d  Best: %d\n", snap.Score, snap.Best)
	if snap.Record {
		fmt.Println("New best score!")
	}
}
