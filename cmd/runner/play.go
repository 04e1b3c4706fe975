package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/platform/gui"
	"github.com/vovakirdan/dash-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Space/Up/W   - Jump (mouse click works too)
  R            - Restart (after game over; Space works too)
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot to ~/.runner/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, longer gaps, fewer clusters
  normal - Speed ramps every few seconds
  hard   - Starts several steps into the ramp
  fixed  - No ramp, base speed forever

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --seed 42 --store memory`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window at the world's native 800x400 size.

Controls are the same as in the terminal; Q quits.

Examples:
  runner window
  runner window --difficulty hard --store gdata`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runPlay(_ *cobra.Command, _ []string) {
	s := mustSession()
	defer s.Close()

	snap, err := tui.Run(s.newSim(flagSeed), runtimeConfig(), s.logger)
	if err != nil {
		s.logger.Error("terminal shell failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	printResult(snap)
}

func runWindow(_ *cobra.Command, _ []string) {
	s := mustSession()
	defer s.Close()

	snap, err := gui.Run(s.newSim(flagSeed), runtimeConfig(), s.logger)
	if err != nil {
		s.logger.Error("window shell failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	printResult(snap)
}

// mustSession opens a session with the tuning from --config and
// --difficulty, exiting on errors.
func mustSession() *session {
	cfg, err := loadRunnerConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	s.cfg = cfg
	return s
}
