package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configFile string
	verbose    bool
	logLevel   string
	dataDir    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audio-featurize",
	Short: "MFCC feature extraction for audio classification",
	Long: `audio-featurize extracts Mel-Frequency Cepstral Coefficient features
from audio datasets for downstream classification.

For every file in a dataset manifest it decodes the audio, computes the
MFCC matrix plus first- and second-order delta matrices, and persists
the per-file records. The records can then be reduced to fixed-length
statistical feature vectors (median, mean, standard deviation per
coefficient) ready for classifier training.

Key features:
- WAV, MP3 and Ogg Vorbis input, optional resampling
- Batch extraction driven by a CSV manifest (FileName, Class)
- msgpack feature store with loss-free round-trips
- Feature matrix reduction and CSV export
- Heatmap rendering of MFCC and delta matrices for inspection`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.config/audio-featurize/audio-featurize.yaml)")

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"base directory audio file names are resolved against")

	// Output and logging flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, error)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("dataset.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if configFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(configFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in standard locations and the working directory
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "audio-featurize"))
		viper.AddConfigPath("/etc/audio-featurize")
		viper.AddConfigPath(".")
		viper.SetConfigName("audio-featurize")
		viper.SetConfigType("yaml")
	}

	// Environment variable support
	viper.SetEnvPrefix("AUDIO_FEATURIZE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

// initializeConfig initializes configuration after flags are parsed
func initializeConfig(cmd *cobra.Command) error {
	// Bind all flags to viper
	return bindFlags(cmd, viper.GetViper())
}

// bindFlags binds each cobra flag to its associated viper configuration
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variable name
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				lastErr = err
			}
		}

		// Bind the flag to viper
		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}

		// Bind to environment variable
		if err := v.BindEnv(f.Name, "AUDIO_FEATURIZE_"+envVarSuffix); err != nil {
			lastErr = err
		}
	})

	return lastErr
}
