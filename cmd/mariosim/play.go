package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nkarpov/mariosim/internal/config"
	"github.com/nkarpov/mariosim/internal/core"
	"github.com/nkarpov/mariosim/internal/platform/tui"
	"github.com/nkarpov/mariosim/internal/sim"
	"github.com/nkarpov/mariosim/internal/storage"
)

var (
	flagConfig  string
	flagVariant string
	flagScheme  string
	flagAuto    bool
	flagSpeed   float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the simulator in the terminal",
	Long: `Start the simulator with a setup menu for display variant, control
scheme, auto-play and speed. Flags preselect the menu values.

Controls during a session:
  1-9, 0, -, = - Send a joypad action from the active scheme
  Space/Enter  - Send a random action
  T            - Toggle auto-play
  P            - Pause/resume
  R            - Restart the session
  V            - Cycle display variant
  C            - Cycle control scheme
  [ / ]        - Speed up / slow down
  B/Esc        - Back to setup menu
  Q/Ctrl+C     - Quit

Examples:
  mariosim play
  mariosim play --variant pixelated --scheme complex
  mariosim play --auto --speed 0.02
  mariosim play --config ./my-session.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagVariant, "variant", "", "Initial display variant: standard, downsampled, pixelated, rectangular")
	playCmd.Flags().StringVar(&flagScheme, "scheme", "", "Initial control scheme: simple, complex, right")
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "Start with auto-play enabled")
	playCmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Initial seconds per auto-play tick (0 = config default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess := sim.New(tuning)
	sess.Reset(core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	})

	if flagVariant != "" {
		variant, parseErr := sim.ParseVariant(flagVariant)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		sess.SetVariant(variant)
	}
	if flagScheme != "" {
		scheme, parseErr := sim.ParseScheme(flagScheme)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
			os.Exit(1)
		}
		sess.SetScheme(scheme)
	}
	if flagAuto {
		sess.SetAutoPlay(true)
	}
	if flagSpeed > 0 {
		sess.SetSpeed(flagSpeed)
	}

	// Open history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage - the simulator still works
		store = nil
	}

	runErr := tui.Run(sess, store, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", runErr)
		os.Exit(1)
	}
}
