// Package mfcc turns audio waveforms into Mel-Frequency Cepstral
// Coefficient feature sets for audio classification.
//
// A waveform is parametrized into an MFCC matrix plus first- and
// second-order delta matrices (Parametrize), bundled with its file
// name and class label into a Record, and reduced to a fixed-length
// statistical feature vector per record (FeatureMatrix). The spectral
// math is delegated to sonido-sonar (STFT, MFCC) and go-mfcc (delta
// regression filter); the statistics come from gonum.
package mfcc
