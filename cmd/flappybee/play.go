package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-bee/internal/config"
	"github.com/vovakirdan/flappy-bee/internal/logging"
	"github.com/vovakirdan/flappy-bee/internal/platform/tui"
)

var (
	flagConfig  string
	flagDebug   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Flappy Bee in the terminal.

Controls:
  Space/Up/W - Fly
  D          - Toggle hitboxes
  Ctrl+S     - Save a text screenshot to ~/.flappybee/screenshots
  Q/Esc      - Quit

The terminal only reports key presses, so every press flies for one tick.
Tap or hold the key (auto-repeat) to keep climbing.

Examples:
  flappybee play
  flappybee play --seed 42 --debug
  flappybee play --config ./my-flappy.yaml --log-file flappybee.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with hitboxes visible")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write round logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go to a file or nowhere.
	logger, logFile, err := logging.Open(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if runErr := tui.Run(cfg, runtimeConfig(width, height, flagDebug), logger); runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
