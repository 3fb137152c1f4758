package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/audio-featurize/internal/app"
)

var (
	featuresRecordsFile string
	featuresOutputFile  string
	featuresCSVFile     string
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Reduce stored feature records to a feature matrix",
	Long: `Features loads a previously extracted record sequence, reduces every
record to its fixed-length statistical feature vector (median, mean and
standard deviation per coefficient over the MFCC, delta-1 and delta-2
matrices) and writes the resulting matrix. Use --csv to additionally
export the matrix with file names and class labels for inspection or
for training tools that consume CSV.`,
	RunE: runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)

	featuresCmd.Flags().StringVar(&featuresRecordsFile, "records", "",
		"input path of the feature records blob")
	featuresCmd.Flags().StringVar(&featuresOutputFile, "output", "",
		"output path for the feature matrix blob")
	featuresCmd.Flags().StringVar(&featuresCSVFile, "csv", "",
		"also export the feature matrix as CSV to this path")
}

func runFeatures(cmd *cobra.Command, args []string) error {
	appCtx := &app.Context{
		FeaturesFile: featuresOutputFile,
		Verbose:      verbose,
	}

	featurizeApp, err := app.NewFeaturizeApp(appCtx)
	if err != nil {
		return err
	}

	return featurizeApp.RunFeatures(featuresRecordsFile, featuresCSVFile)
}
