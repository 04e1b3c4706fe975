// runner is an endless runner played in the terminal or in a window.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner menu              - Pick a difficulty preset, play, repeat
//	runner window            - Play in a desktop window
//	runner best              - Show (or --reset) the best score
//	runner config            - Print the effective tuning configuration
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--store <name>    - Best score backend: sqlite, gdata, memory
//	--db <path>       - SQLite database path (default: ~/.runner/best.db)
//	--log <path>      - Log file (default: ~/.runner/runner.log, "" disables)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagStore   string
	flagDBPath  string
	flagLogPath string
	flagVerbose bool

	// Tuning flags shared by play, menu, window and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dash Runner - jump over obstacles for as long as you can",
	Long: `Dash Runner is an endless runner. Obstacles slide in from the right,
some on the ground and some in the air; jump over the grounded ones and stay
under the rest. The world speeds up every few seconds.

Available commands:
  play     - Play in the terminal
  menu     - Pick a difficulty preset, then play
  window   - Play in a desktop window
  best     - Show or reset the best score
  config   - Print the effective configuration

Examples:
  runner play
  runner play --difficulty hard
  runner menu --fps 30
  runner window --store gdata
  runner best --reset`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storage.BackendSQLite, fmt.Sprintf("Best score backend %v", storage.Backends()))
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/best.db", "Path to the SQLite best score database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.runner/runner.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	for _, cmd := range []*cobra.Command{playCmd, menuCmd, windowCmd, configCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(configCmd)
}
