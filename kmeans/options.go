package kmeans

import (
	"github.com/go-numclust/numclust/centroid"
	"github.com/go-numclust/numclust/metric"
)

// CenterMethod selects how a cluster's centroid is computed.
type CenterMethod byte

const (
	// MeanCentroid uses the arithmetic mean, the default for unrecognized
	// method tags.
	MeanCentroid CenterMethod = 'a'
	// MedianCentroid uses the per-feature median.
	MedianCentroid CenterMethod = 'm'
)

// Options configures a k-partition clustering run.
type Options struct {
	// K is the number of clusters to find.
	K int
	// Passes is the number of random restarts; the lowest-error solution is
	// kept. Passes <= 1 performs a single EM run.
	Passes int
	// Method selects the mean or median centroid; any value other than
	// MedianCentroid silently falls back to MeanCentroid.
	Method CenterMethod
	// Metric selects the dissimilarity kernel; unrecognized tags silently
	// fall back to Euclidean.
	Metric metric.Tag
}

// DefaultOptions returns Options for a single-pass, mean-centroid, Euclidean
// run; callers set K explicitly.
func DefaultOptions() Options {
	return Options{Passes: 1, Method: MeanCentroid, Metric: metric.Euclidean}
}

// builder resolves Method to a centroid.Builder, defaulting silently to the
// mean centroid.
func (o Options) builder() centroid.Builder {
	if o.Method == MedianCentroid {
		return centroid.Median
	}
	return centroid.Mean
}
