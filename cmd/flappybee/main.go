// flappybee is a Flappy Bird style game: steer a bee through the gaps between flowers.
//
// Usage:
//
//	flappybee play       - Play in the terminal
//	flappybee window     - Play in a desktop window
//	flappybee sim        - Run a headless simulation and print the result
//	flappybee config     - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible flower placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-bee/internal/core"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappybee",
	Short: "Flappy Bee - fly a bee between the flowers",
	Long: `Flappy Bee is a side-scrolling game. Hold fly to climb, let go to fall,
and pass between the flower heads to score. Touching a flower restarts the round.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Headless simulation
  config   - Print the default config

Examples:
  flappybee play
  flappybee window --scale 1.5
  flappybee sim --frames 3600 --autopilot --seed 7
  flappybee config > ~/.flappybee/flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the frontend settings from the global flags.
func runtimeConfig(width, height int, debug bool) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	rc.Debug = debug
	return rc
}
