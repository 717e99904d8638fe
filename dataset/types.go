package dataset

// Vector is satisfied by both ExpressionBlock and CentroidBlock: given an
// object index and a feature index, it returns the feature's value and
// whether it is present. The metric package's kernels are written against
// this interface so the same kernel compares two data rows, a data row
// against a centroid, or two centroids.
type Vector interface {
	At(object, feature int) (float64, bool)
}

// ExpressionBlock is a dense matrix of measurements with a parallel presence
// mask and a per-feature weight vector.
//
// Data and Mask always have the same physical shape: len(Data) rows, each of
// equal length. The Transpose flag selects which physical axis is the
// "object" axis for every algorithm in this module: when Transpose is false,
// rows are objects and columns are features; when true, the roles swap.
// Weight always has one entry per feature, regardless of Transpose.
type ExpressionBlock struct {
	Data      [][]float64
	Mask      [][]bool
	Weight    []float64
	Transpose bool
}

// New validates and constructs an ExpressionBlock. data and mask must share
// shape; weight must have one entry per feature given transpose.
func New(data [][]float64, mask [][]bool, weight []float64, transpose bool) (*ExpressionBlock, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrEmptyBlock
	}
	if len(mask) != len(data) {
		return nil, ErrShapeMismatch
	}
	cols := len(data[0])
	for i := range data {
		if len(data[i]) != cols || len(mask[i]) != cols {
			return nil, ErrShapeMismatch
		}
	}
	nFeatures := cols
	if transpose {
		nFeatures = len(data)
	}
	if len(weight) != nFeatures {
		return nil, ErrWeightLength
	}
	return &ExpressionBlock{Data: data, Mask: mask, Weight: weight, Transpose: transpose}, nil
}

// Rows returns the number of physical rows in Data.
func (b *ExpressionBlock) Rows() int { return len(b.Data) }

// Cols returns the number of physical columns in Data.
func (b *ExpressionBlock) Cols() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// NumObjects returns the number of objects being clustered: rows when
// Transpose is false, columns otherwise.
func (b *ExpressionBlock) NumObjects() int {
	if b.Transpose {
		return b.Cols()
	}
	return b.Rows()
}

// NumFeatures returns the number of features per object: columns when
// Transpose is false, rows otherwise.
func (b *ExpressionBlock) NumFeatures() int {
	if b.Transpose {
		return b.Rows()
	}
	return b.Cols()
}

// At returns the value and presence of feature k of object i, honoring
// Transpose. Callers must ensure i and k are in range.
func (b *ExpressionBlock) At(i, k int) (float64, bool) {
	if b.Transpose {
		return b.Data[k][i], b.Mask[k][i]
	}
	return b.Data[i][k], b.Mask[i][k]
}

// ObjectInRange reports whether object index i is valid for this block.
func (b *ExpressionBlock) ObjectInRange(i int) bool {
	return i >= 0 && i < b.NumObjects()
}

// CentroidBlock holds per-cluster centroid vectors with their own presence
// mask, in the same transpose convention as the ExpressionBlock they
// summarize: physical shape is [K][F] when Transpose is false and [F][K]
// when true, so that centroid.At mirrors ExpressionBlock.At for object index
// k in [0,K) and feature index f in [0,F).
type CentroidBlock struct {
	Data      [][]float64
	Mask      [][]bool
	K         int
	F         int
	Transpose bool
}

// NewCentroidBlock allocates a zeroed CentroidBlock of k clusters over f
// features, in the given transpose orientation.
func NewCentroidBlock(k, f int, transpose bool) *CentroidBlock {
	rows, cols := k, f
	if transpose {
		rows, cols = f, k
	}
	data := make([][]float64, rows)
	mask := make([][]bool, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		mask[i] = make([]bool, cols)
	}
	return &CentroidBlock{Data: data, Mask: mask, K: k, F: f, Transpose: transpose}
}

// At returns the value and presence of feature f of cluster k.
func (c *CentroidBlock) At(k, f int) (float64, bool) {
	if c.Transpose {
		return c.Data[f][k], c.Mask[f][k]
	}
	return c.Data[k][f], c.Mask[k][f]
}

// Set stores the value and presence of feature f of cluster k.
func (c *CentroidBlock) Set(k, f int, value float64, present bool) {
	if c.Transpose {
		c.Data[f][k], c.Mask[f][k] = value, present
		return
	}
	c.Data[k][f], c.Mask[k][f] = value, present
}

// Assignment is the cluster label of each object, one entry per object,
// values in [0, K).
type Assignment []int

// Counts returns the number of objects currently assigned to each of k
// clusters.
func (a Assignment) Counts(k int) []int {
	counts := make([]int, k)
	for _, label := range a {
		counts[label]++
	}
	return counts
}

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)
	return out
}

// Equal reports whether two assignments have identical labels in the same
// order. Lengths must match; mismatched lengths are never equal.
func (a Assignment) Equal(b Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
