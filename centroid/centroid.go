package centroid

import (
	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/numeric"
)

// Builder computes a CentroidBlock for k clusters of b's objects given the
// current assignment.
type Builder func(b *dataset.ExpressionBlock, assignment dataset.Assignment, k int) *dataset.CentroidBlock

// Mean builds centroids as the arithmetic mean, per feature, over cluster
// members with that feature present. A feature with no present member in a
// cluster is marked absent in the centroid and set to 0.
func Mean(b *dataset.ExpressionBlock, assignment dataset.Assignment, k int) *dataset.CentroidBlock {
	f := b.NumFeatures()
	n := b.NumObjects()
	out := dataset.NewCentroidBlock(k, f, b.Transpose)

	sums := make([][]float64, k)
	counts := make([][]int, k)
	for c := 0; c < k; c++ {
		sums[c] = make([]float64, f)
		counts[c] = make([]int, f)
	}
	for i := 0; i < n; i++ {
		c := assignment[i]
		for j := 0; j < f; j++ {
			v, present := b.At(i, j)
			if !present {
				continue
			}
			sums[c][j] += v
			counts[c][j]++
		}
	}
	for c := 0; c < k; c++ {
		for j := 0; j < f; j++ {
			if counts[c][j] > 0 {
				out.Set(c, j, sums[c][j]/float64(counts[c][j]), true)
			} else {
				out.Set(c, j, 0, false)
			}
		}
	}
	return out
}

// Median builds centroids as the per-feature median over cluster members
// with that feature present, via numeric.Median's partial selection.
func Median(b *dataset.ExpressionBlock, assignment dataset.Assignment, k int) *dataset.CentroidBlock {
	f := b.NumFeatures()
	n := b.NumObjects()
	out := dataset.NewCentroidBlock(k, f, b.Transpose)

	for c := 0; c < k; c++ {
		for j := 0; j < f; j++ {
			var values []float64
			for i := 0; i < n; i++ {
				if assignment[i] != c {
					continue
				}
				v, present := b.At(i, j)
				if present {
					values = append(values, v)
				}
			}
			if len(values) > 0 {
				out.Set(c, j, numeric.Median(values), true)
			} else {
				out.Set(c, j, 0, false)
			}
		}
	}
	return out
}
