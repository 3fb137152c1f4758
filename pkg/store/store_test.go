package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/audio-featurize/pkg/mfcc"
)

func TestRecordsRoundTrip(t *testing.T) {
	records := []mfcc.Record{
		{
			FileName: "blues/blues.00000.wav",
			Class:    "blues",
			MFCC:     [][]float64{{1.5, -2.25}, {0, 3}},
			Delta1:   [][]float64{{0.1, 0.2}, {0.3, 0.4}},
			Delta2:   [][]float64{{-1, -2}, {-3, -4}},
		},
		{
			FileName: "rock/rock.00001.wav",
			Class:    "rock",
			MFCC:     [][]float64{{7}},
			Delta1:   [][]float64{{8}},
			Delta2:   [][]float64{{9}},
		},
	}

	path := filepath.Join(t.TempDir(), "records.msgpack")
	require.NoError(t, SaveRecords(path, records))

	loaded, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestMatrixRoundTrip(t *testing.T) {
	matrix := [][]float64{
		{1, 2, 3},
		{4.5, -6.25, 0},
	}

	path := filepath.Join(t.TempDir(), "features.msgpack")
	require.NoError(t, SaveMatrix(path, matrix))

	loaded, err := LoadMatrix(path)
	require.NoError(t, err)
	assert.Equal(t, matrix, loaded)
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "out.msgpack")

	require.NoError(t, SaveMatrix(path, [][]float64{{1}}))

	loaded, err := LoadMatrix(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}}, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadRecords(filepath.Join(t.TempDir(), "absent.msgpack"))
	require.Error(t, err)
}
