package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/audio-featurize/internal/app"
)

var (
	inspectHeatmap      string
	inspectCoefficients int
	inspectSampleRate   int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <audio-file>",
	Short: "Parametrize a single audio file and report its shapes",
	Long: `Inspect decodes one audio file, computes its MFCC and delta matrices
and prints a shape summary. With --heatmap the three matrices are
rendered as stacked time-indexed heatmaps into a PNG for visual
inspection.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectHeatmap, "heatmap", "",
		"write a heatmap PNG of the MFCC and delta matrices to this path")
	inspectCmd.Flags().IntVarP(&inspectCoefficients, "coefficients", "n", 0,
		"number of cepstral coefficients (default from config, 14)")
	inspectCmd.Flags().IntVar(&inspectSampleRate, "sample-rate", 0,
		"resample decoded audio to this rate (0 keeps the native rate)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	appCtx := &app.Context{
		Coefficients: inspectCoefficients,
		SampleRate:   inspectSampleRate,
		Verbose:      verbose,
	}

	featurizeApp, err := app.NewFeaturizeApp(appCtx)
	if err != nil {
		return err
	}

	return featurizeApp.RunInspect(args[0], inspectHeatmap)
}
