package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/storage"
)

var flagReset bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show or reset the best score",
	Long: `Display the best score kept by the selected store.

Examples:
  runner best
  runner best --store gdata
  runner best --reset`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the stored best score")
}

func runBest(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagStore, storage.Options{
		Path:    flagDBPath,
		AppName: storage.DefaultAppName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening best score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting best score: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score reset.")
		return
	}

	best, err := store.Best()
	switch {
	case errors.Is(err, storage.ErrMalformedBest):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Println("The stored value is unreadable and counts as 0; the next run will overwrite it.")
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error reading best score: %v\n", err)
		os.Exit(1)
	}

	if best == 0 {
		fmt.Println("No best score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first one!")
		return
	}
	fmt.Printf("Best score: %d\n", best)
}
