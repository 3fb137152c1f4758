package mfcc

import (
	"fmt"

	"github.com/RyanBlaney/sonido-sonar/algorithms/spectral"
	"github.com/RyanBlaney/sonido-sonar/fingerprint/analyzers"
	zmfcc "github.com/zrma/go-mfcc/mfcc"
)

// Options controls single-signal parametrization.
type Options struct {
	// Coefficients is the number of cepstral coefficients per frame.
	Coefficients int
	// WindowSize and HopSize configure the STFT framing, in samples.
	WindowSize int
	HopSize    int
	// DeltaWindow is the half-width of the delta regression filter.
	DeltaWindow int
}

// DefaultOptions returns the parametrization defaults: 14
// coefficients over 2048-sample windows with a 512-sample hop and a
// +/-4 frame delta window.
func DefaultOptions() Options {
	return Options{
		Coefficients: 14,
		WindowSize:   2048,
		HopSize:      512,
		DeltaWindow:  4,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Coefficients <= 0 {
		o.Coefficients = def.Coefficients
	}
	if o.WindowSize <= 0 {
		o.WindowSize = def.WindowSize
	}
	if o.HopSize <= 0 {
		o.HopSize = def.HopSize
	}
	if o.DeltaWindow <= 0 {
		o.DeltaWindow = def.DeltaWindow
	}
	return o
}

// Params holds the parametrization of one waveform. All three matrices
// are coefficient-major: rows are coefficient indices, columns are
// time frames, and the shapes are identical.
type Params struct {
	MFCC   [][]float64
	Delta1 [][]float64
	Delta2 [][]float64
}

// Coefficients returns the number of coefficient rows.
func (p *Params) Coefficients() int {
	return len(p.MFCC)
}

// Frames returns the number of time frames.
func (p *Params) Frames() int {
	if len(p.MFCC) == 0 {
		return 0
	}
	return len(p.MFCC[0])
}

// Parametrize computes the MFCC matrix of a waveform together with its
// first- and second-order deltas. The signal must span at least one
// analysis window. The function is deterministic and has no side
// effects.
func Parametrize(samples []float64, sampleRate int, opts Options) (*Params, error) {
	opts = opts.withDefaults()

	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if len(samples) < opts.WindowSize {
		return nil, fmt.Errorf("waveform too short: %d samples, need at least %d", len(samples), opts.WindowSize)
	}

	analyzer := analyzers.NewSpectralAnalyzer(sampleRate)
	spectrogram, err := analyzer.ComputeSTFTWithWindow(samples, opts.WindowSize, opts.HopSize, analyzers.WindowHann)
	if err != nil {
		return nil, fmt.Errorf("STFT failed: %w", err)
	}

	computer := spectral.NewMFCC(sampleRate, opts.Coefficients)
	frames, err := computer.ComputeFrames(spectrogram.Magnitude)
	if err != nil {
		return nil, fmt.Errorf("MFCC computation failed: %w", err)
	}

	delta1, err := zmfcc.ComputeDelta(frames, opts.DeltaWindow)
	if err != nil {
		return nil, fmt.Errorf("delta computation failed: %w", err)
	}

	// The second-order delta is the delta operator applied to the
	// first-order delta trajectory.
	delta2, err := zmfcc.ComputeDelta(delta1, opts.DeltaWindow)
	if err != nil {
		return nil, fmt.Errorf("delta-delta computation failed: %w", err)
	}

	return &Params{
		MFCC:   transpose(frames),
		Delta1: transpose(delta1),
		Delta2: transpose(delta2),
	}, nil
}

// transpose converts a frame-major matrix (frames x coefficients) to
// coefficient-major (coefficients x frames).
func transpose(frames [][]float64) [][]float64 {
	if len(frames) == 0 {
		return [][]float64{}
	}
	coefs := len(frames[0])
	out := make([][]float64, coefs)
	for c := range out {
		out[c] = make([]float64, len(frames))
		for t := range frames {
			out[c][t] = frames[t][c]
		}
	}
	return out
}
