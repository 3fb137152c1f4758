// Package dataset drives batch parametrization over a tabular audio
// dataset: a CSV manifest of file names and class labels is walked in
// row order, each file is decoded and parametrized, and the results
// are collected as one feature record per row.
package dataset
