package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickpong/internal/platform/tui"
	"github.com/vovakirdan/brickpong/internal/storage"
)

var flagLimit int

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recent rounds and stats",
	Long: `Display the most recent rounds with their outcomes, plus win, loss and tie
totals. In a terminal the results open in an interactive table; otherwise they
are printed as plain text.

Examples:
  brickpong results
  brickpong results --limit 50
  brickpong results | less`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of recent rounds to show")
}

func runResults(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rounds, err := store.RecentRounds(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		err = tui.RunScoreboard(rounds, stats)
	} else {
		err = tui.WriteResults(os.Stdout, rounds, stats)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error showing results: %v\n", err)
		os.Exit(1)
	}
}
