package dataset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/RyanBlaney/sonido-sonar/logging"

	"github.com/RyanBlaney/audio-featurize/pkg/audio"
	"github.com/RyanBlaney/audio-featurize/pkg/mfcc"
)

// Extractor runs single-signal parametrization over every entry of a
// dataset, sequentially and in row order.
type Extractor struct {
	dataDir    string
	targetRate int
	opts       mfcc.Options
	logger     logging.Logger
}

// ExtractorConfig configures an Extractor.
type ExtractorConfig struct {
	// DataDir is the base directory manifest file names are resolved
	// against.
	DataDir string
	// TargetRate resamples every decoded waveform to this rate when
	// positive; 0 keeps each file's native rate.
	TargetRate int
	// Options are passed through to mfcc.Parametrize.
	Options mfcc.Options
}

// NewExtractor creates an Extractor for the given data directory.
func NewExtractor(cfg ExtractorConfig) *Extractor {
	return &Extractor{
		dataDir:    cfg.DataDir,
		targetRate: cfg.TargetRate,
		opts:       cfg.Options,
		logger: logging.WithFields(logging.Fields{
			"component": "dataset_extractor",
			"data_dir":  cfg.DataDir,
		}),
	}
}

// Extract decodes and parametrizes every entry, returning one record
// per entry in input order. The first decode or parametrization
// failure aborts the whole batch; there is no partial result.
// Cancellation of ctx is honored between files.
func (e *Extractor) Extract(ctx context.Context, entries []Entry) ([]mfcc.Record, error) {
	e.logger.Info("Starting dataset extraction", logging.Fields{
		"entries":      len(entries),
		"coefficients": e.opts.Coefficients,
	})

	records := make([]mfcc.Record, 0, len(entries))
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("extraction canceled after %d of %d files: %w", i, len(entries), err)
		}

		path := filepath.Join(e.dataDir, entry.FileName)
		waveform, err := audio.LoadResampled(path, e.targetRate)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, entry.FileName, err)
		}

		params, err := mfcc.Parametrize(waveform.Samples, waveform.SampleRate, e.opts)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, entry.FileName, err)
		}

		records = append(records, mfcc.NewRecord(entry.FileName, entry.Class, params))

		e.logger.Debug("Parametrized file", logging.Fields{
			"index":       i,
			"file":        entry.FileName,
			"class":       entry.Class,
			"sample_rate": waveform.SampleRate,
			"frames":      params.Frames(),
			"progress":    fmt.Sprintf("%d/%d", i+1, len(entries)),
		})
	}

	e.logger.Info("Dataset extraction completed", logging.Fields{
		"records": len(records),
	})

	return records, nil
}
