package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/RyanBlaney/audio-featurize/pkg/mfcc"
)

// Save serializes v to path, creating parent directories as needed.
func Save(path string, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode feature store: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write feature store: %w", err)
	}
	return nil
}

// Load deserializes the blob at path into v, which must be a pointer
// to the type that was stored.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read feature store: %w", err)
	}
	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode feature store: %w", err)
	}
	return nil
}

// SaveRecords persists a feature record sequence.
func SaveRecords(path string, records []mfcc.Record) error {
	return Save(path, records)
}

// LoadRecords reads back a feature record sequence.
func LoadRecords(path string) ([]mfcc.Record, error) {
	var records []mfcc.Record
	if err := Load(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveMatrix persists a feature matrix.
func SaveMatrix(path string, matrix [][]float64) error {
	return Save(path, matrix)
}

// LoadMatrix reads back a feature matrix.
func LoadMatrix(path string) ([][]float64, error) {
	var matrix [][]float64
	if err := Load(path, &matrix); err != nil {
		return nil, err
	}
	return matrix, nil
}
