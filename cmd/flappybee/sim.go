package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/logging"
	"github.com/vovakirdan/flappy-bee/internal/sim"
)

var (
	flagSimConfig string
	flagFrames    int
	flagFlapEvery int
	flagAutopilot bool
	flagVerbose   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a display at a fixed step and print a summary.
The same seed and flags always produce the same result.

Input is either a fixed rhythm (--flap-every N flies on every Nth frame) or the
built-in autopilot that aims for the middle of the next gap.

Examples:
  flappybee sim --seed 1 --frames 600 --flap-every 12
  flappybee sim --seed 7 --frames 36000 --autopilot -v`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Fly on every Nth frame (0 = never)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot fly")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every finished round to stderr")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagFrames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", flagFrames)
	}
	if flagFlapEvery < 0 {
		return fmt.Errorf("--flap-every must not be negative, got %d", flagFlapEvery)
	}

	cfg, err := config.LoadFlappy(flagSimConfig)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagVerbose {
		logOut = os.Stderr
	}
	logger := logging.New(logOut, false)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := runtimeConfig(0, 0, false)

	res := sim.Run(cfg, sim.Options{
		Seed:      seed,
		Frames:    flagFrames,
		Step:      rc.StepDelta(),
		FlapEvery: flagFlapEvery,
		Autopilot: flagAutopilot,
	}, logger)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:    %d\n", seed)
	fmt.Fprintf(out, "frames:  %d\n", res.Frames)
	fmt.Fprintf(out, "rounds:  %d\n", res.State.Rounds)
	fmt.Fprintf(out, "best:    %d\n", res.State.Best)
	fmt.Fprintf(out, "score:   %d\n", res.State.Score)
	return nil
}
