package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-bee/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in config as YAML. Save it to ~/.flappybee/flappy.yaml or
./configs/flappy.yaml and edit it; files only need the fields they change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

