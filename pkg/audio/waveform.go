package audio

import "time"

// Waveform is a decoded mono audio signal with samples in [-1, 1].
type Waveform struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the playback duration of the waveform.
func (w *Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}
	seconds := float64(len(w.Samples)) / float64(w.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}
