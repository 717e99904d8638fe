package metric

import (
	"math"

	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/numeric"
)

// EuclideanKernel computes the weighted Euclidean distance, scaled by the
// declared feature count n (not the usable-feature count) so that distances
// stay comparable across object pairs with different amounts of masking.
func EuclideanKernel(n int, a, b dataset.Vector, weight []float64, i1, i2 int) float64 {
	var result, tweight float64
	for k := 0; k < n; k++ {
		v1, ok1 := a.At(i1, k)
		v2, ok2 := b.At(i2, k)
		if !ok1 || !ok2 {
			continue
		}
		term := v1 - v2
		result += weight[k] * term * term
		tweight += weight[k]
	}
	if tweight == 0 {
		return 0
	}
	result /= tweight
	result *= float64(n)
	return result
}

// HarmonicKernel computes the harmonically-summed weighted Euclidean
// distance: the inverse of n times the weighted mean of per-feature inverse
// squared differences, n being the declared feature count. An exact match
// on any usable feature makes the distance 0.
func HarmonicKernel(n int, a, b dataset.Vector, weight []float64, i1, i2 int) float64 {
	var result, tweight float64
	for k := 0; k < n; k++ {
		v1, ok1 := a.At(i1, k)
		v2, ok2 := b.At(i2, k)
		if !ok1 || !ok2 {
			continue
		}
		term := v1 - v2
		if term == 0 {
			return 0
		}
		result += weight[k] / (term * term)
		tweight += weight[k]
	}
	if tweight == 0 {
		return 0
	}
	result /= tweight
	result *= float64(n)
	return 1.0 / result
}

// PearsonKernel computes 1 minus the weighted Pearson correlation.
func PearsonKernel(n int, a, b dataset.Vector, weight []float64, i1, i2 int) float64 {
	r, ok := weightedCorrelation(n, a, b, weight, i1, i2)
	if !ok {
		return 1
	}
	return 1 - r
}

// AbsolutePearsonKernel computes 1 minus the absolute value of the weighted
// Pearson correlation.
func AbsolutePearsonKernel(n int, a, b dataset.Vector, weight []float64, i1, i2 int) float64 {
	r, ok := weightedCorrelation(n, a, b, weight, i1, i2)
	if !ok {
		return 1
	}
	return 1 - math.Abs(r)
}

// weightedCorrelation returns the weighted Pearson correlation of object i1
// of a against object i2 of b over usable features, and false if either
// variance is non-positive (the degenerate case both Pearson kernels map to
// distance 1).
func weightedCorrelation(n int, a, b dataset.Vector, weight []float64, i1, i2 int) (float64, bool) {
	var result, sum1, sum2, denom1, denom2, tweight float64
	for k := 0; k < n; k++ {
		v1, ok1 := a.At(i1, k)
		v2, ok2 := b.At(i2, k)
		if !ok1 || !ok2 {
			continue
		}
		w := weight[k]
		sum1 += w * v1
		sum2 += w * v2
		result += w * v1 * v2
		denom1 += w * v1 * v1
		denom2 += w * v2 * v2
		tweight += w
	}
	if tweight == 0 {
		return 0, false
	}
	result -= sum1 * sum2 / tweight
	denom1 -= sum1 * sum1 / tweight
	denom2 -= sum2 * sum2 / tweight
	if denom1 <= 0 || denom2 <= 0 {
		return 0, false
	}
	return result / math.Sqrt(denom1*denom2), true
}

// UncenteredKernel computes 1 minus the weighted uncentered Pearson
// correlation (no mean subtraction).
func UncenteredKernel(n int, a, b dataset.Vector, weight []float64, i1, i2 int) float64 {
	r, usable, ok := weightedUncentered(n, a, b, weight, i1, i2)
	if !usable {
		return 0
	}
	if !ok {
		return 1
	}
	return 1 - r
}

// AbsoluteUncenteredKernel computes 1 minus the absolute value of the
// weighted uncentered Pearson correlation.
func AbsoluteUncenteredKernel(n int, a, b dataset.Vector, weight []float64, i1, i2 int) float64 {
	r, usable, ok := weightedUncentered(n, a, b, weight, i1, i2)
	if !usable {
		return 0
	}
	if !ok {
		return 1
	}
	return 1 - math.Abs(r)
}

func weightedUncentered(n int, a, b dataset.Vector, weight []float64, i1, i2 int) (r float64, usable, ok bool) {
	var result, denom1, denom2 float64
	for k := 0; k < n; k++ {
		v1, ok1 := a.At(i1, k)
		v2, ok2 := b.At(i2, k)
		if !ok1 || !ok2 {
			continue
		}
		w := weight[k]
		result += w * v1 * v2
		denom1 += w * v1 * v1
		denom2 += w * v2 * v2
		usable = true
	}
	if !usable {
		return 0, false, false
	}
	if denom1 == 0 || denom2 == 0 {
		return 0, true, false
	}
	return result / math.Sqrt(denom1*denom2), true, true
}

// SpearmanKernel computes 1 minus the unweighted Pearson correlation of the
// average-tie ranks of the usable features. Weights are ignored, matching
// the original library's contract.
func SpearmanKernel(n int, a, b dataset.Vector, weight []float64, i1, i2 int) float64 {
	var v1s, v2s []float64
	for k := 0; k < n; k++ {
		val1, ok1 := a.At(i1, k)
		val2, ok2 := b.At(i2, k)
		if !ok1 || !ok2 {
			continue
		}
		v1s = append(v1s, val1)
		v2s = append(v2s, val2)
	}
	m := len(v1s)
	if m == 0 {
		return 0
	}
	rank1 := numeric.Rank(v1s)
	rank2 := numeric.Rank(v2s)
	avgrank := 0.5 * float64(m-1)

	var result, denom1, denom2 float64
	for i := 0; i < m; i++ {
		result += rank1[i] * rank2[i]
		denom1 += rank1[i] * rank1[i]
		denom2 += rank2[i] * rank2[i]
	}
	result /= float64(m)
	denom1 /= float64(m)
	denom2 /= float64(m)
	result -= avgrank * avgrank
	denom1 -= avgrank * avgrank
	denom2 -= avgrank * avgrank
	if denom1 <= 0 || denom2 <= 0 {
		return 1
	}
	return 1 - result/math.Sqrt(denom1*denom2)
}

// KendallKernel computes 1 minus Kendall's tau over ordered usable pairs.
// Ex and Ey count pairs tied in only the x or only the y coordinate
// respectively; weights are ignored, matching the original contract.
func KendallKernel(n int, a, b dataset.Vector, weight []float64, i1, i2 int) float64 {
	var con, dis, ex, ey int
	var flag bool

	var xs, ys []float64
	for k := 0; k < n; k++ {
		val1, ok1 := a.At(i1, k)
		val2, ok2 := b.At(i2, k)
		if !ok1 || !ok2 {
			continue
		}
		xs = append(xs, val1)
		ys = append(ys, val2)
	}
	for i := range xs {
		for j := 0; j < i; j++ {
			x1, x2 := xs[i], xs[j]
			y1, y2 := ys[i], ys[j]
			switch {
			case x1 < x2 && y1 < y2, x1 > x2 && y1 > y2:
				con++
			case x1 < x2 && y1 > y2, x1 > x2 && y1 < y2:
				dis++
			}
			if x1 == x2 && y1 != y2 {
				ex++
			}
			if x1 != x2 && y1 == y2 {
				ey++
			}
			flag = true
		}
	}
	if !flag {
		return 0
	}
	denomx := float64(con + dis + ex)
	denomy := float64(con + dis + ey)
	if denomx == 0 || denomy == 0 {
		return 1
	}
	tau := float64(con-dis) / math.Sqrt(denomx*denomy)
	return 1 - tau
}
