package numeric

import "sort"

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// Median returns the median of x via partial selection (quickselect),
// leaving x's element order undefined on return. For n<1 it returns 0; for
// n==1 it returns the single element; for even n it averages the two middle
// order statistics.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return x[0]
	}
	if n%2 == 1 {
		return quickselect(x, n/2)
	}
	hi := quickselect(x, n/2)
	lo := quickselect(x[:n/2], n/2-1)
	return 0.5 * (lo + hi)
}

// quickselect returns the k-th smallest element (0-indexed) of x, partially
// reordering x in the process. Hoare partition scheme, iterative.
func quickselect(x []float64, k int) float64 {
	lo, hi := 0, len(x)-1
	for lo < hi {
		pivot := x[(lo+hi)/2]
		i, j := lo, hi
		for i <= j {
			for x[i] < pivot {
				i++
			}
			for x[j] > pivot {
				j--
			}
			if i <= j {
				x[i], x[j] = x[j], x[i]
				i++
				j--
			}
		}
		if k <= j {
			hi = j
		} else if k >= i {
			lo = i
		} else {
			return x[k]
		}
	}
	return x[lo]
}

// SortIndex returns an index permutation such that x[index[i]] is
// non-decreasing. x itself is left unmodified. Ties keep their original
// relative order (a stable sort), which is a deterministic choice the
// original C qsort-on-pointers implementation left unspecified.
func SortIndex(x []float64) []int {
	index := make([]int, len(x))
	for i := range index {
		index[i] = i
	}
	sort.SliceStable(index, func(a, b int) bool {
		return x[index[a]] < x[index[b]]
	})
	return index
}

// Rank returns the average-tie rank of each element of x: elements are
// assigned 0-based positions in sorted order, and groups of equal values
// all receive the average of the positions the group spans.
func Rank(x []float64) []float64 {
	n := len(x)
	index := SortIndex(x)
	rank := make([]float64, n)
	for i, idx := range index {
		rank[idx] = float64(i)
	}
	i := 0
	for i < n {
		value := x[index[i]]
		j := i + 1
		for j < n && x[index[j]] == value {
			j++
		}
		m := j - i
		avg := rank[index[i]] + float64(m-1)/2.0
		for t := i; t < j; t++ {
			rank[index[t]] = avg
		}
		i = j
	}
	return rank
}
