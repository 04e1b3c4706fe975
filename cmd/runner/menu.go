package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/config"
	"github.com/vovakirdan/dash-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty preset, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a preset, Enter to play.
After quitting a run, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Q/Esc        - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// --difficulty is ignored here, the menu picks the preset
	base, err := loadRunnerConfig(flagConfig, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	cfg := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(s.best(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = result.Config

		if result.Quit {
			break
		}

		s.cfg = base
		config.ApplyPreset(&s.cfg, result.Preset)
		s.logger.Info("preset selected", "preset", result.Preset)

		if _, err := tui.Run(s.newSim(flagSeed), cfg, s.logger); err != nil {
			s.logger.Error("terminal shell failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
	}
}
