// mariosim is a terminal demo of a simulated Super Mario Bros session.
//
// Usage:
//
//	mariosim play            - Run the simulator in the terminal
//	mariosim serve           - Start SSH server for remote sessions
//	mariosim history         - Show recorded session history
//	mariosim actions         - List the joypad actions per control scheme
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible sessions
//	--db <path>     - Set database path (default: ~/.mariosim/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mariosim",
	Short: "Simulated Super Mario Bros session in your terminal",
	Long: `mariosim renders a simulated Super Mario Bros session as an animated
terminal demo: a placeholder game frame, score and lives counters, display
variants, control schemes, auto-play and a speed slider.

Available commands:
  play      - Run the simulator locally
  serve     - Start SSH server for remote sessions
  history   - View recorded session history
  actions   - List the joypad actions per control scheme

Examples:
  mariosim play
  mariosim play --variant pixelated --auto
  mariosim serve --ssh :2222
  mariosim history`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mariosim/history.db", "Path to session history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(actionsCmd)
}
