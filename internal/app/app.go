package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/RyanBlaney/sonido-sonar/logging"

	"github.com/RyanBlaney/audio-featurize/configs"
	"github.com/RyanBlaney/audio-featurize/pkg/audio"
	"github.com/RyanBlaney/audio-featurize/pkg/dataset"
	"github.com/RyanBlaney/audio-featurize/pkg/mfcc"
	"github.com/RyanBlaney/audio-featurize/pkg/store"
	"github.com/RyanBlaney/audio-featurize/pkg/visualize"
)

// Context holds the application context and CLI overrides
type Context struct {
	// CLI arguments; empty or zero values fall back to configuration
	ManifestFile string
	DataDir      string
	RecordsFile  string
	FeaturesFile string
	Coefficients int
	SampleRate   int
	Verbose      bool

	// Runtime context
	Logger logging.Logger
	Config *configs.Config
}

// FeaturizeApp handles the feature extraction application lifecycle
type FeaturizeApp struct {
	ctx    *Context
	config *configs.Config
	logger logging.Logger
}

// NewFeaturizeApp creates a new featurize application
func NewFeaturizeApp(ctx *Context) (*FeaturizeApp, error) {
	logger := setupLogging(ctx)
	ctx.Logger = logger

	config, err := loadAndMergeConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	ctx.Config = config

	logger.Debug("Featurize application initialized", logging.Fields{
		"manifest":     config.Dataset.Manifest,
		"data_dir":     config.Dataset.DataDir,
		"coefficients": config.Features.Coefficients,
		"sample_rate":  config.Audio.SampleRate,
	})

	return &FeaturizeApp{
		ctx:    ctx,
		config: config,
		logger: logger,
	}, nil
}

// setupLogging configures logging based on context
func setupLogging(ctx *Context) logging.Logger {
	return logging.WithFields(logging.Fields{
		"component": "audio_featurize",
	})
}

// loadAndMergeConfig loads configuration and applies CLI overrides
func loadAndMergeConfig(ctx *Context) (*configs.Config, error) {
	config, err := configs.LoadConfig()
	if err != nil {
		return nil, err
	}

	if ctx.ManifestFile != "" {
		config.Dataset.Manifest = ctx.ManifestFile
	}
	if ctx.DataDir != "" {
		config.Dataset.DataDir = ctx.DataDir
	}
	if ctx.RecordsFile != "" {
		config.Output.RecordsFile = ctx.RecordsFile
	}
	if ctx.FeaturesFile != "" {
		config.Output.FeaturesFile = ctx.FeaturesFile
	}
	if ctx.Coefficients > 0 {
		config.Features.Coefficients = ctx.Coefficients
	}
	if ctx.SampleRate > 0 {
		config.Audio.SampleRate = ctx.SampleRate
	}
	if ctx.Verbose {
		config.Verbose = true
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (app *FeaturizeApp) options() mfcc.Options {
	return mfcc.Options{
		Coefficients: app.config.Features.Coefficients,
		WindowSize:   app.config.Features.WindowSize,
		HopSize:      app.config.Features.HopSize,
		DeltaWindow:  app.config.Features.DeltaWindow,
	}
}

// RunExtract parametrizes every file in the dataset manifest and
// persists the resulting records, plus the reduced feature matrix when
// a features file is configured.
func (app *FeaturizeApp) RunExtract(ctx context.Context) error {
	entries, err := dataset.LoadManifest(app.config.Dataset.Manifest)
	if err != nil {
		return fmt.Errorf("failed to load dataset manifest: %w", err)
	}

	extractor := dataset.NewExtractor(dataset.ExtractorConfig{
		DataDir:    app.config.Dataset.DataDir,
		TargetRate: app.config.Audio.SampleRate,
		Options:    app.options(),
	})

	records, err := extractor.Extract(ctx, entries)
	if err != nil {
		return fmt.Errorf("dataset extraction failed: %w", err)
	}

	if err := store.SaveRecords(app.config.Output.RecordsFile, records); err != nil {
		return err
	}
	app.logger.Info("Feature records written", logging.Fields{
		"path":    app.config.Output.RecordsFile,
		"records": len(records),
	})

	if app.config.Output.FeaturesFile != "" {
		if err := app.reduceAndSave(records, app.config.Output.FeaturesFile); err != nil {
			return err
		}
	}

	return nil
}

// RunFeatures loads a stored record sequence, reduces it to the
// feature matrix and persists the matrix. When csvPath is non-empty
// the matrix is additionally exported as CSV alongside file names and
// class labels.
func (app *FeaturizeApp) RunFeatures(recordsPath, csvPath string) error {
	if recordsPath == "" {
		recordsPath = app.config.Output.RecordsFile
	}

	records, err := store.LoadRecords(recordsPath)
	if err != nil {
		return err
	}

	matrix, err := app.reduceAndSaveReturning(records, app.config.Output.FeaturesFile)
	if err != nil {
		return err
	}

	if csvPath != "" {
		if err := exportCSV(csvPath, records, matrix); err != nil {
			return err
		}
		app.logger.Info("Feature CSV written", logging.Fields{"path": csvPath})
	}

	return nil
}

// RunInspect parametrizes a single audio file, reports the shapes and
// optionally renders the heatmap image.
func (app *FeaturizeApp) RunInspect(path, heatmapPath string) error {
	waveform, err := audio.LoadResampled(path, app.config.Audio.SampleRate)
	if err != nil {
		return err
	}

	params, err := mfcc.Parametrize(waveform.Samples, waveform.SampleRate, app.options())
	if err != nil {
		return err
	}

	fmt.Printf("file:          %s\n", filepath.Base(path))
	fmt.Printf("sample rate:   %d Hz\n", waveform.SampleRate)
	fmt.Printf("duration:      %.2fs\n", waveform.Duration().Seconds())
	fmt.Printf("coefficients:  %d\n", params.Coefficients())
	fmt.Printf("time frames:   %d\n", params.Frames())
	fmt.Printf("vector length: %d\n", mfcc.FeatureLength(params.Coefficients()))

	if heatmapPath != "" {
		if err := visualize.WriteParamsPNG(params, heatmapPath); err != nil {
			return err
		}
		app.logger.Info("Heatmap written", logging.Fields{"path": heatmapPath})
	}

	return nil
}

func (app *FeaturizeApp) reduceAndSave(records []mfcc.Record, path string) error {
	_, err := app.reduceAndSaveReturning(records, path)
	return err
}

func (app *FeaturizeApp) reduceAndSaveReturning(records []mfcc.Record, path string) ([][]float64, error) {
	matrix, err := mfcc.FeatureMatrix(records)
	if err != nil {
		return nil, fmt.Errorf("feature reduction failed: %w", err)
	}

	if err := store.SaveMatrix(path, matrix); err != nil {
		return nil, err
	}
	app.logger.Info("Feature matrix written", logging.Fields{
		"path": path,
		"rows": len(matrix),
	})

	return matrix, nil
}

// exportCSV writes one row per record: file name, class label, then
// the feature vector values.
func exportCSV(path string, records []mfcc.Record, matrix [][]float64) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for i, record := range records {
		row := make([]string, 0, len(matrix[i])+2)
		row = append(row, record.FileName, record.Class)
		for _, v := range matrix[i] {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return f.Close()
}
