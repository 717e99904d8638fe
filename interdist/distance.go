package interdist

import (
	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/metric"
	"github.com/go-numclust/numclust/numeric"
)

// Distance reports the distance between the clusters named by index1 and
// index2 under tag and method. Every index must address a valid object of
// b; an out-of-range index, an empty index list, or an unrecognized method
// causes Distance to return 0 rather than propagate a failure.
func Distance(b *dataset.ExpressionBlock, tag metric.Tag, method Method, index1, index2 []int) float64 {
	if len(index1) == 0 || len(index2) == 0 {
		return 0
	}
	n := b.NumObjects()
	for _, idx := range index1 {
		if idx < 0 || idx >= n {
			return 0
		}
	}
	for _, idx := range index2 {
		if idx < 0 || idx >= n {
			return 0
		}
	}

	kernel := metric.Select(tag)
	nFeatures := b.NumFeatures()

	switch method {
	case Mean:
		c1 := subsetCentroid(b, index1, numeric.Mean)
		c2 := subsetCentroid(b, index2, numeric.Mean)
		return kernel(nFeatures, c1, c2, b.Weight, 0, 0)
	case Median:
		c1 := subsetCentroid(b, index1, numeric.Median)
		c2 := subsetCentroid(b, index2, numeric.Median)
		return kernel(nFeatures, c1, c2, b.Weight, 0, 0)
	case Nearest:
		return pairwiseExtreme(b, kernel, nFeatures, index1, index2, false)
	case Farthest:
		return pairwiseExtreme(b, kernel, nFeatures, index1, index2, true)
	case Average:
		var sum float64
		for _, i := range index1 {
			for _, j := range index2 {
				sum += kernel(nFeatures, b, b, b.Weight, i, j)
			}
		}
		return sum / float64(len(index1)*len(index2))
	default:
		return 0
	}
}

// DistanceStrict behaves like Distance but reports each of its silent
// degenerate cases — an empty cluster, an out-of-range index, or an
// unrecognized method — as a distinct named error instead of 0.
func DistanceStrict(b *dataset.ExpressionBlock, tag metric.Tag, method Method, index1, index2 []int) (float64, error) {
	if len(index1) == 0 || len(index2) == 0 {
		return 0, ErrEmptyCluster
	}
	n := b.NumObjects()
	for _, idx := range index1 {
		if idx < 0 || idx >= n {
			return 0, ErrIndexOutOfRange
		}
	}
	for _, idx := range index2 {
		if idx < 0 || idx >= n {
			return 0, ErrIndexOutOfRange
		}
	}
	switch method {
	case Mean, Median, Nearest, Farthest, Average:
	default:
		return 0, ErrUnknownMethod
	}
	return Distance(b, tag, method, index1, index2), nil
}

// subsetCentroid builds a single-cluster centroid over the given object
// indices, applying aggregate to each feature's present values. A feature
// with no present member across the subset is marked absent.
func subsetCentroid(b *dataset.ExpressionBlock, index []int, aggregate func([]float64) float64) *dataset.CentroidBlock {
	f := b.NumFeatures()
	c := dataset.NewCentroidBlock(1, f, b.Transpose)
	for feat := 0; feat < f; feat++ {
		var values []float64
		for _, i := range index {
			if v, present := b.At(i, feat); present {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			c.Set(0, feat, aggregate(values), true)
		} else {
			c.Set(0, feat, 0, false)
		}
	}
	return c
}

// pairwiseExtreme scans the cartesian product of index1 and index2 and
// returns the largest kernel distance if max is true, or the smallest
// otherwise.
func pairwiseExtreme(b *dataset.ExpressionBlock, kernel metric.Kernel, nFeatures int, index1, index2 []int, max bool) float64 {
	best := kernel(nFeatures, b, b, b.Weight, index1[0], index2[0])
	for _, i := range index1 {
		for _, j := range index2 {
			d := kernel(nFeatures, b, b, b.Weight, i, j)
			if max && d > best {
				best = d
			}
			if !max && d < best {
				best = d
			}
		}
	}
	return best
}
