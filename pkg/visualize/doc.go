// Package visualize renders MFCC parametrizations as heatmap images
// for inspection and debugging. It is not consumed programmatically by
// the extraction pipeline.
package visualize
