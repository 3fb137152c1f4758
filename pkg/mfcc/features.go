package mfcc

import (
	"fmt"
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// statistics applied along the time axis of each matrix, in feature
// vector order.
var statistics = []func([]float64) float64{median, mean, stddev}

const matricesPerRecord = 3 // mfcc, delta1, delta2

// FeatureLength returns the feature vector length for a given
// coefficient count.
func FeatureLength(coefficients int) int {
	return len(statistics) * matricesPerRecord * coefficients
}

// FeatureVector reduces one record to its statistical feature vector:
// median, mean and standard deviation per coefficient row, computed
// for the MFCC, delta-1 and delta-2 matrices and concatenated with the
// statistic outermost (median over all three matrices first, then
// mean, then standard deviation).
func FeatureVector(r Record) ([]float64, error) {
	coefs := len(r.MFCC)
	if coefs == 0 {
		return nil, fmt.Errorf("record %q has an empty MFCC matrix", r.FileName)
	}

	vector := make([]float64, 0, FeatureLength(coefs))
	for _, statistic := range statistics {
		for _, matrix := range [][][]float64{r.MFCC, r.Delta1, r.Delta2} {
			if len(matrix) != coefs {
				return nil, fmt.Errorf("record %q: matrix has %d coefficient rows, expected %d", r.FileName, len(matrix), coefs)
			}
			for _, row := range matrix {
				if len(row) == 0 {
					return nil, fmt.Errorf("record %q: empty coefficient row", r.FileName)
				}
				vector = append(vector, statistic(row))
			}
		}
	}
	return vector, nil
}

// FeatureMatrix reduces a record sequence to a feature matrix: one row
// per record in input order, each row a fixed-length feature vector of
// 3 statistics x 3 matrices x coefficient count. All records must
// share the same coefficient count; a mismatch is an error.
func FeatureMatrix(records []Record) ([][]float64, error) {
	features := make([][]float64, len(records))
	if len(records) == 0 {
		return features, nil
	}

	coefs := len(records[0].MFCC)
	for i, r := range records {
		if len(r.MFCC) != coefs {
			return nil, fmt.Errorf("record %d (%q): %d coefficient rows, expected %d", i, r.FileName, len(r.MFCC), coefs)
		}
		vector, err := FeatureVector(r)
		if err != nil {
			return nil, err
		}
		features[i] = vector
	}
	return features, nil
}

// median averages the two middle elements for an even-length input.
func median(x []float64) float64 {
	sorted := slices.Clone(x)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func mean(x []float64) float64 {
	return stat.Mean(x, nil)
}

// stddev is the population standard deviation, matching the reduction
// used by the classifier training pipeline.
func stddev(x []float64) float64 {
	return stat.PopStdDev(x, nil)
}
