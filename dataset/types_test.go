package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-numclust/numclust/dataset"
)

func TestNew_ValidatesShape(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	mask := [][]bool{{true, true}, {true, false}}
	weight := []float64{1, 1}

	b, err := dataset.New(data, mask, weight, false)
	require.NoError(t, err)
	require.Equal(t, 2, b.NumObjects())
	require.Equal(t, 2, b.NumFeatures())

	v, present := b.At(1, 1)
	require.False(t, present)
	require.Equal(t, 4.0, v)
}

func TestNew_RejectsShapeMismatch(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	mask := [][]bool{{true, true}}
	_, err := dataset.New(data, mask, []float64{1, 1}, false)
	require.ErrorIs(t, err, dataset.ErrShapeMismatch)
}

func TestNew_RejectsWeightLength(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}}
	mask := [][]bool{{true, true}, {true, true}}
	_, err := dataset.New(data, mask, []float64{1, 1, 1}, false)
	require.ErrorIs(t, err, dataset.ErrWeightLength)
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := dataset.New(nil, nil, nil, false)
	require.ErrorIs(t, err, dataset.ErrEmptyBlock)
}

func TestTranspose_SwapsObjectsAndFeatures(t *testing.T) {
	data := [][]float64{{1, 2, 3}, {4, 5, 6}}
	mask := [][]bool{{true, true, true}, {true, true, true}}
	b, err := dataset.New(data, mask, []float64{1, 1}, true)
	require.NoError(t, err)
	require.Equal(t, 3, b.NumObjects())
	require.Equal(t, 2, b.NumFeatures())

	v, present := b.At(2, 1)
	require.True(t, present)
	require.Equal(t, 6.0, v)
}

func TestCentroidBlock_RespectsTranspose(t *testing.T) {
	c := dataset.NewCentroidBlock(2, 3, true)
	c.Set(1, 2, 9.5, true)
	v, present := c.At(1, 2)
	require.True(t, present)
	require.Equal(t, 9.5, v)
	require.Equal(t, 9.5, c.Data[2][1])
}

func TestAssignment_Counts(t *testing.T) {
	a := dataset.Assignment{0, 0, 1, 2, 1}
	require.Equal(t, []int{2, 2, 1}, a.Counts(3))
}

func TestAssignment_Equal(t *testing.T) {
	a := dataset.Assignment{0, 1, 1}
	b := dataset.Assignment{0, 1, 1}
	c := dataset.Assignment{0, 1, 0}
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(dataset.Assignment{0, 1}))
}
