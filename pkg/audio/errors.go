package audio

import "errors"

var (
	// ErrUnsupportedFormat is returned when the file extension does not
	// map to a known decoder.
	ErrUnsupportedFormat = errors.New("audio: unsupported file format")

	// ErrInvalidFile is returned when a file fails header validation
	// before any samples are decoded.
	ErrInvalidFile = errors.New("audio: invalid or corrupt file")

	// ErrEmptyWaveform is returned when decoding succeeds but yields no
	// samples.
	ErrEmptyWaveform = errors.New("audio: decoded waveform is empty")
)
