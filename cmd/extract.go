package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/audio-featurize/internal/app"
)

var (
	extractManifest     string
	extractRecordsFile  string
	extractFeaturesFile string
	extractCoefficients int
	extractSampleRate   int
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Parametrize every file in a dataset manifest",
	Long: `Extract decodes every audio file listed in the dataset manifest,
computes its MFCC and delta matrices, and writes the resulting feature
records to the configured records file. When a features file is
configured the reduced feature matrix is written as well.

The manifest is a CSV file with FileName and Class columns; file names
are resolved against the data directory. A decode or parametrization
failure on any file aborts the whole batch.`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractManifest, "manifest", "m", "",
		"dataset manifest CSV (FileName, Class)")
	extractCmd.Flags().StringVar(&extractRecordsFile, "records", "",
		"output path for the feature records blob")
	extractCmd.Flags().StringVar(&extractFeaturesFile, "features", "",
		"output path for the reduced feature matrix blob")
	extractCmd.Flags().IntVarP(&extractCoefficients, "coefficients", "n", 0,
		"number of cepstral coefficients (default from config, 14)")
	extractCmd.Flags().IntVar(&extractSampleRate, "sample-rate", 0,
		"resample decoded audio to this rate (0 keeps native rates)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	appCtx := &app.Context{
		ManifestFile: extractManifest,
		DataDir:      dataDir,
		RecordsFile:  extractRecordsFile,
		FeaturesFile: extractFeaturesFile,
		Coefficients: extractCoefficients,
		SampleRate:   extractSampleRate,
		Verbose:      verbose,
	}

	featurizeApp, err := app.NewFeaturizeApp(appCtx)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return featurizeApp.RunExtract(ctx)
}
