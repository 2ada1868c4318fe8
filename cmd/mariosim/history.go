package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkarpov/mariosim/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTop   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded session history",
	Long: `Display the most recent recorded sessions and per-variant stats.

Examples:
  mariosim history
  mariosim history --limit 25
  mariosim history --top
  mariosim history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagHistoryTop, "top", false, "Sort by score instead of recency")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded sessions")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session history cleared.")
		return
	}

	var records []storage.SessionRecord
	if flagHistoryTop {
		records, err = store.TopSessions(flagHistoryLimit)
	} else {
		records, err = store.RecentSessions(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	if flagHistoryTop {
		fmt.Println("Top sessions")
	} else {
		fmt.Println("Recent sessions")
	}
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mariosim play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-17s  %-7s  %-7s  %-10s  %-12s  %-9s  %s\n",
		"When", "Score", "Steps", "Lives lost", "Variant", "Scheme", "Auto")
	fmt.Printf("  %-17s  %-7s  %-7s  %-10s  %-12s  %-9s  %s\n",
		"----", "-----", "-----", "----------", "-------", "------", "----")

	for _, rec := range records {
		auto := "off"
		if rec.AutoPlay {
			auto = "on"
		}
		fmt.Printf("  %-17s  %-7d  %-7d  %-10d  %-12s  %-9s  %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Score, rec.Steps, rec.LivesLost,
			rec.Variant, rec.Scheme, auto)
	}

	best, err := store.BestScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best score: %d\n", best)
	}

	stats, err := store.StatsByVariant()
	if err == nil && len(stats) > 0 {
		fmt.Println()
		fmt.Println("By variant:")
		for _, s := range stats {
			fmt.Printf("  %-14s  %3d sessions  high %5d  avg score %7.1f  avg steps %6.1f\n",
				s.Variant, s.Sessions, s.HighScore, s.AvgScore, s.AvgSteps)
		}
	}
}
