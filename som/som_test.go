package som_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/metric"
	"github.com/go-numclust/numclust/rngsrc"
	"github.com/go-numclust/numclust/som"
)

func twoBlobs(t *testing.T) *dataset.ExpressionBlock {
	t.Helper()
	data := [][]float64{
		{1, 0}, {0.9, 0.1}, {1, 0.1},
		{0, 1}, {0.1, 0.9}, {0.1, 1},
	}
	mask := make([][]bool, len(data))
	for i := range mask {
		mask[i] = []bool{true, true}
	}
	b, err := dataset.New(data, mask, []float64{1, 1}, false)
	require.NoError(t, err)
	return b
}

func TestNewGrid_PrototypesAreUnitNormalized(t *testing.T) {
	grid := som.NewGrid(2, 2, 3, rngsrc.New(1))
	for ix := 0; ix < grid.NX; ix++ {
		for iy := 0; iy < grid.NY; iy++ {
			var sumSq float64
			for _, v := range grid.Proto[ix][iy] {
				sumSq += v * v
			}
			require.InDelta(t, 1.0, sumSq, 1e-9)
		}
	}
}

func TestCluster_AssignGroupsSimilarObjectsTogether(t *testing.T) {
	b := twoBlobs(t)
	opts := som.Options{NX: 2, NY: 2, Tau0: 0.5, NIter: 400, Metric: metric.Euclidean, Assign: true}
	_, assignment := som.Cluster(b, opts, nil, rngsrc.New(3))

	require.Len(t, assignment, 6)
	require.Equal(t, assignment[0], assignment[1])
	require.Equal(t, assignment[0], assignment[2])
	require.Equal(t, assignment[3], assignment[4])
	require.Equal(t, assignment[3], assignment[5])
}

func TestCluster_WithoutAssignReturnsNilAssignment(t *testing.T) {
	b := twoBlobs(t)
	opts := som.Options{NX: 2, NY: 2, Tau0: 0.5, NIter: 10, Metric: metric.Euclidean}
	_, assignment := som.Cluster(b, opts, nil, rngsrc.New(3))
	require.Nil(t, assignment)
}

func TestCluster_ReusesSuppliedGrid(t *testing.T) {
	b := twoBlobs(t)
	grid := som.NewGrid(2, 2, 2, rngsrc.New(9))
	opts := som.Options{NX: 2, NY: 2, Tau0: 0.5, NIter: 5, Metric: metric.Euclidean}
	returned, _ := som.Cluster(b, opts, grid, rngsrc.New(3))
	require.Same(t, grid, returned)
}

func TestClusterStrict_SucceedsWithObjects(t *testing.T) {
	b := twoBlobs(t)
	opts := som.Options{NX: 2, NY: 2, Tau0: 0.5, NIter: 10, Metric: metric.Euclidean, Assign: true}
	grid, assignment, err := som.ClusterStrict(b, opts, nil, rngsrc.New(3))
	require.NoError(t, err)
	require.NotNil(t, grid)
	require.Len(t, assignment, 6)
}
