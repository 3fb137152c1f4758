package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	resampling "github.com/tphakala/go-audio-resampling"
)

// Load decodes the audio file at path into a mono waveform at the
// file's native sample rate. The decoder is selected by file
// extension (.wav, .mp3, .ogg, .oga).
func Load(path string) (*Waveform, error) {
	return LoadResampled(path, 0)
}

// LoadResampled decodes the audio file at path and, when targetRate is
// positive and differs from the native rate, resamples the waveform to
// targetRate. targetRate == 0 keeps the native rate.
func LoadResampled(path string, targetRate int) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	var w *Waveform
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		w, err = decodeWAV(f)
	case ".mp3":
		w, err = decodeMP3(f)
	case ".ogg", ".oga":
		w, err = decodeVorbis(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	if len(w.Samples) == 0 {
		return nil, ErrEmptyWaveform
	}

	if targetRate > 0 && targetRate != w.SampleRate {
		resampled, err := resampling.ResampleMono(w.Samples, float64(w.SampleRate), float64(targetRate), resampling.QualityHigh)
		if err != nil {
			return nil, fmt.Errorf("failed to resample %d -> %d Hz: %w", w.SampleRate, targetRate, err)
		}
		w = &Waveform{Samples: resampled, SampleRate: targetRate}
	}

	return w, nil
}

func decodeWAV(f *os.File) (*Waveform, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, ErrInvalidFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM buffer: %w", err)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = int(dec.BitDepth)
	}
	scale := float64(int64(1) << (bitDepth - 1))

	// 8-bit WAV PCM is unsigned, centered on 128.
	offset := 0.0
	if bitDepth == 8 {
		offset = scale
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := range frames {
		sum := 0.0
		for c := range channels {
			sum += (float64(buf.Data[i*channels+c]) - offset) / scale
		}
		samples[i] = sum / float64(channels)
	}

	return &Waveform{Samples: samples, SampleRate: buf.Format.SampleRate}, nil
}

func decodeMP3(f *os.File) (*Waveform, error) {
	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	// go-mp3 emits 16-bit little-endian PCM, always two channels.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded PCM: %w", err)
	}

	frames := len(raw) / 4
	samples := make([]float64, frames)
	for i := range frames {
		left := int16(uint16(raw[4*i]) | uint16(raw[4*i+1])<<8)
		right := int16(uint16(raw[4*i+2]) | uint16(raw[4*i+3])<<8)
		samples[i] = (float64(left) + float64(right)) / 2.0 / 32768.0
	}

	return &Waveform{Samples: samples, SampleRate: dec.SampleRate()}, nil
}

func decodeVorbis(f *os.File) (*Waveform, error) {
	dec, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, err
	}

	channels := dec.Channels()
	if channels <= 0 {
		channels = 1
	}

	interleaved := make([]float32, 0, 4096)
	buf := make([]float32, 4096)
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read vorbis stream: %w", err)
		}
	}

	frames := len(interleaved) / channels
	samples := make([]float64, frames)
	for i := range frames {
		sum := 0.0
		for c := range channels {
			sum += float64(interleaved[i*channels+c])
		}
		samples[i] = sum / float64(channels)
	}

	return &Waveform{Samples: samples, SampleRate: dec.SampleRate()}, nil
}
