package distmatrix

import (
	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/metric"
)

// Matrix is a lower-triangular jagged pairwise distance matrix: row i holds
// exactly i stored entries (row 0 is empty), so Matrix[i][j] exists only for
// 0 <= j < i. Symmetry (Matrix[i][j] == Matrix[j][i]) and a zero diagonal
// are implicit and never stored.
type Matrix [][]float64

// At returns the distance between objects i and j for any i != j, resolving
// the implicit symmetry and zero diagonal.
func (m Matrix) At(i, j int) float64 {
	if i == j {
		return 0
	}
	if j > i {
		i, j = j, i
	}
	return m[i][j]
}

// N returns the number of objects the matrix was built over.
func (m Matrix) N() int { return len(m) }

// Build computes the jagged distance matrix over every object pair of b
// under the given kernel tag. It returns nil if b has fewer than 2 objects,
// matching the original library's silent contract.
func Build(b *dataset.ExpressionBlock, tag metric.Tag) Matrix {
	n := b.NumObjects()
	if n < 2 {
		return nil
	}
	kernel := metric.Select(tag)
	nFeatures := b.NumFeatures()

	m := make(Matrix, n)
	m[0] = []float64{}
	for i := 1; i < n; i++ {
		row := make([]float64, i)
		for j := 0; j < i; j++ {
			row[j] = kernel(nFeatures, b, b, b.Weight, i, j)
		}
		m[i] = row
	}
	return m
}

// BuildStrict is Build with an explicit error instead of a nil Matrix when
// b has fewer than 2 objects.
func BuildStrict(b *dataset.ExpressionBlock, tag metric.Tag) (Matrix, error) {
	if b.NumObjects() < 2 {
		return nil, ErrTooFewObjects
	}
	return Build(b, tag), nil
}

// GetScale inspects a built Matrix and returns the divisor that rescales
// linkage distances under kernel tag into [0, 2]: 0.5 for the absolute
// correlation kernels (a, x), half of the current maximum off-diagonal
// value for e and h, and 1 for everything else.
func GetScale(m Matrix, tag metric.Tag) float64 {
	switch tag {
	case metric.AbsolutePearson, metric.AbsoluteUncentered:
		return 0.5
	case metric.Euclidean, metric.Harmonic:
		max := 0.0
		for _, row := range m {
			for _, v := range row {
				if v > max {
					max = v
				}
			}
		}
		return max / 2.0
	default:
		return 1
	}
}
