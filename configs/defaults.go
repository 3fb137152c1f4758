package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// setDefaults sets default configuration values for all components
func setDefaults(v *viper.Viper) {
	// Dataset defaults
	if !v.IsSet("dataset.manifest") {
		v.Set("dataset.manifest", "dataset.csv")
	}
	if !v.IsSet("dataset.data_dir") {
		v.Set("dataset.data_dir", ".")
	}

	// Audio defaults: native sample rate, no resampling
	if !v.IsSet("audio.sample_rate") {
		v.Set("audio.sample_rate", 0)
	}

	// Feature extraction defaults
	if !v.IsSet("features.coefficients") {
		v.Set("features.coefficients", 14)
	}
	if !v.IsSet("features.window_size") {
		v.Set("features.window_size", 2048)
	}
	if !v.IsSet("features.hop_size") {
		v.Set("features.hop_size", 512)
	}
	if !v.IsSet("features.delta_window") {
		v.Set("features.delta_window", 4)
	}

	// Output defaults
	if !v.IsSet("output.records_file") {
		v.Set("output.records_file", "features/records.msgpack")
	}
	if !v.IsSet("output.features_file") {
		v.Set("output.features_file", "features/features.msgpack")
	}

	// Application defaults
	if !v.IsSet("verbose") {
		v.Set("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.Set("log_level", "info")
	}
}

// DefaultConfig returns the built-in configuration values.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	config := &Config{}
	// Unmarshal of freshly set defaults cannot fail
	_ = v.Unmarshal(config)
	return config
}

// WriteDefaultConfig writes the default configuration as YAML to path,
// creating parent directories as needed.
func WriteDefaultConfig(path string) error {
	defaults := map[string]any{
		"verbose":   false,
		"log_level": "info",
		"dataset": map[string]any{
			"manifest": "dataset.csv",
			"data_dir": ".",
		},
		"audio": map[string]any{
			"sample_rate": 0,
		},
		"features": map[string]any{
			"coefficients": 14,
			"window_size":  2048,
			"hop_size":     512,
			"delta_window": 4,
		},
		"output": map[string]any{
			"records_file":  "features/records.msgpack",
			"features_file": "features/features.msgpack",
		},
	}

	data, err := yaml.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("failed to encode default configuration: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write default configuration: %w", err)
	}

	return nil
}
