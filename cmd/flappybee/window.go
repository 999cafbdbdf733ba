package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/logging"
	"github.com/vovakirdan/flappy-bee/internal/platform/desktop"
)

var (
	flagWindowConfig string
	flagWindowDebug  bool
	flagScale        float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Flappy Bee in a native window.

Controls:
  Space/Up/Mouse - Fly (hold to keep climbing)
  D              - Toggle hitboxes
  Q/Esc          - Quit

Examples:
  flappybee window
  flappybee window --scale 1.5 --debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().BoolVar(&flagWindowDebug, "debug", false, "Start with hitboxes visible")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFlappy(flagWindowConfig)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, flagWindowDebug)
	rc := runtimeConfig(int(cfg.World.Width), int(cfg.World.Height), flagWindowDebug)

	return desktop.Run(cfg, rc, flagScale, logger)
}
