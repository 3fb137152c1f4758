// Package audio decodes audio files into mono float64 waveforms for
// feature extraction. WAV, MP3 and Ogg Vorbis inputs are supported;
// multi-channel audio is averaged down to mono and samples are
// normalized to [-1, 1]. Decoding is delegated to the go-audio, go-mp3
// and oggvorbis libraries.
package audio
