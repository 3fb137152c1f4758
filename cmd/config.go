package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/audio-featurize/configs"
)

var configInitPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage audio-featurize configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Init writes the built-in defaults as a YAML configuration file that
can be edited and picked up on the next run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := configs.WriteDefaultConfig(configInitPath); err != nil {
			return err
		}
		fmt.Printf("Wrote default configuration to %s\n", configInitPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().StringVarP(&configInitPath, "output", "o", "audio-featurize.yaml",
		"path to write the default configuration to")
}
