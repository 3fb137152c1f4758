package mfcc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureLength(t *testing.T) {
	assert.Equal(t, 126, FeatureLength(14))
	assert.Equal(t, 18, FeatureLength(2))
}

func TestFeatureVectorOrderAndValues(t *testing.T) {
	record := Record{
		FileName: "a.wav",
		Class:    "0",
		MFCC:     [][]float64{{1, 2, 3}, {4, 5, 6}},
		Delta1:   [][]float64{{0, 0, 0}, {1, 1, 1}},
		Delta2:   [][]float64{{2, 2, 2}, {3, 3, 3}},
	}

	vector, err := FeatureVector(record)
	require.NoError(t, err)
	require.Len(t, vector, 18)

	// Statistic outermost: medians over mfcc, delta1, delta2 rows...
	medians := vector[0:6]
	assert.Equal(t, []float64{2, 5, 0, 1, 2, 3}, medians)

	// ...then means...
	means := vector[6:12]
	assert.Equal(t, []float64{2, 5, 0, 1, 2, 3}, means)

	// ...then population standard deviations.
	stds := vector[12:18]
	rowStd := math.Sqrt(2.0 / 3.0) // std of {1,2,3}
	assert.InDelta(t, rowStd, stds[0], 1e-12)
	assert.InDelta(t, rowStd, stds[1], 1e-12)
	for _, v := range stds[2:] {
		assert.InDelta(t, 0, v, 1e-12)
	}
}

func TestFeatureVectorEvenFrameMedians(t *testing.T) {
	// Even-length rows: the median is the midpoint of the two middle
	// values, not the lower one.
	record := Record{
		FileName: "even.wav",
		Class:    "0",
		MFCC:     [][]float64{{1, 2, 3, 4}},
		Delta1:   [][]float64{{10, 20}},
		Delta2:   [][]float64{{4, 3, 1, 2}},
	}

	vector, err := FeatureVector(record)
	require.NoError(t, err)
	require.Len(t, vector, 9)

	assert.InDelta(t, 2.5, vector[0], 1e-12)
	assert.InDelta(t, 15, vector[1], 1e-12)
	assert.InDelta(t, 2.5, vector[2], 1e-12)
}

func TestFeatureVectorEmptyMatrix(t *testing.T) {
	_, err := FeatureVector(Record{FileName: "a.wav"})
	require.Error(t, err)
}

func TestFeatureMatrixShape(t *testing.T) {
	records := []Record{
		syntheticRecord("a.wav", "0", 14, 5),
		syntheticRecord("b.wav", "1", 14, 9),
	}

	matrix, err := FeatureMatrix(records)
	require.NoError(t, err)

	require.Len(t, matrix, 2)
	assert.Len(t, matrix[0], 126)
	assert.Len(t, matrix[1], 126)
}

func TestFeatureMatrixEmptyInput(t *testing.T) {
	matrix, err := FeatureMatrix(nil)
	require.NoError(t, err)
	assert.Empty(t, matrix)
}

func TestFeatureMatrixCoefficientMismatch(t *testing.T) {
	records := []Record{
		syntheticRecord("a.wav", "0", 14, 5),
		syntheticRecord("b.wav", "1", 12, 5),
	}

	_, err := FeatureMatrix(records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coefficient rows")
}

// syntheticRecord builds a record with deterministic matrix content.
func syntheticRecord(name, class string, coefs, frames int) Record {
	matrix := func(offset float64) [][]float64 {
		m := make([][]float64, coefs)
		for c := range m {
			m[c] = make([]float64, frames)
			for t := range m[c] {
				m[c][t] = offset + float64(c)*0.5 + float64(t)*0.25
			}
		}
		return m
	}

	return Record{
		FileName: name,
		Class:    class,
		MFCC:     matrix(0),
		Delta1:   matrix(100),
		Delta2:   matrix(200),
	}
}
