package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose  bool   `mapstructure:"verbose"`
	LogLevel string `mapstructure:"log_level"`

	// Dataset input configuration
	Dataset DatasetConfig `mapstructure:"dataset"`

	// Audio decoding configuration
	Audio AudioConfig `mapstructure:"audio"`

	// Feature extraction configuration
	Features FeatureConfig `mapstructure:"features"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// DatasetConfig locates the dataset manifest and audio files
type DatasetConfig struct {
	Manifest string `mapstructure:"manifest"`
	DataDir  string `mapstructure:"data_dir"`
}

// AudioConfig contains audio decoding settings
type AudioConfig struct {
	// SampleRate resamples decoded waveforms to this rate when
	// positive; 0 keeps each file's native rate.
	SampleRate int `mapstructure:"sample_rate"`
}

// FeatureConfig contains parametrization settings
type FeatureConfig struct {
	Coefficients int `mapstructure:"coefficients"`
	WindowSize   int `mapstructure:"window_size"`
	HopSize      int `mapstructure:"hop_size"`
	DeltaWindow  int `mapstructure:"delta_window"`
}

// OutputConfig contains output file settings
type OutputConfig struct {
	RecordsFile  string `mapstructure:"records_file"`
	FeaturesFile string `mapstructure:"features_file"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	setDefaults(viper.GetViper())

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Audio.SampleRate < 0 {
		return fmt.Errorf("audio sample rate cannot be negative")
	}

	if c.Features.Coefficients <= 0 {
		return fmt.Errorf("feature coefficients must be positive")
	}

	if c.Features.WindowSize <= 0 {
		return fmt.Errorf("feature window size must be positive")
	}

	if c.Features.HopSize <= 0 {
		return fmt.Errorf("feature hop size must be positive")
	}

	if c.Features.HopSize > c.Features.WindowSize {
		return fmt.Errorf("feature hop size cannot exceed window size")
	}

	if c.Features.DeltaWindow <= 0 {
		return fmt.Errorf("feature delta window must be positive")
	}

	return nil
}
