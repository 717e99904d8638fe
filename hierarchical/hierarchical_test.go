package hierarchical_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/distmatrix"
	"github.com/go-numclust/numclust/hierarchical"
	"github.com/go-numclust/numclust/metric"
)

func unitSquare(t *testing.T) *dataset.ExpressionBlock {
	t.Helper()
	data := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	mask := make([][]bool, len(data))
	for i := range mask {
		mask[i] = []bool{true, true}
	}
	b, err := dataset.New(data, mask, []float64{1, 1}, false)
	require.NoError(t, err)
	return b
}

func TestSingle_UnitSquareAllLinksUnitDistance(t *testing.T) {
	b := unitSquare(t)
	d := distmatrix.Build(b, metric.Euclidean)
	tree := hierarchical.Single(d)

	require.Len(t, tree.Merges, 3)
	for _, m := range tree.Merges {
		require.InDelta(t, 1.0, m.Distance, 1e-9)
	}
}

func TestCluster_EveryLinkageProducesNMinus1Merges(t *testing.T) {
	b := unitSquare(t)
	for _, linkage := range []hierarchical.Linkage{
		hierarchical.SingleLinkage,
		hierarchical.CompleteLinkage,
		hierarchical.AverageLinkage,
		hierarchical.CentroidLinkage,
	} {
		tree := hierarchical.Cluster(b, metric.Euclidean, linkage, nil, false)
		require.Len(t, tree.Merges, 3)
	}
}

func TestCluster_EveryOriginalIDAppearsExactlyOnce(t *testing.T) {
	b := unitSquare(t)
	tree := hierarchical.Cluster(b, metric.Euclidean, hierarchical.SingleLinkage, nil, false)

	seen := make(map[int]int)
	for _, m := range tree.Merges {
		for _, n := range []hierarchical.Node{m.Left, m.Right} {
			if n.IsLeaf() {
				seen[n.Index()]++
			}
		}
	}
	require.Len(t, seen, 4)
	for obj, count := range seen {
		require.Equalf(t, 1, count, "object %d should appear exactly once", obj)
	}
}

func TestSingle_LinkageIsNonDecreasing(t *testing.T) {
	data := [][]float64{{0}, {1}, {2}, {10}}
	mask := make([][]bool, len(data))
	for i := range mask {
		mask[i] = []bool{true}
	}
	b, err := dataset.New(data, mask, []float64{1}, false)
	require.NoError(t, err)
	d := distmatrix.Build(b, metric.Euclidean)
	tree := hierarchical.Single(d)

	for i := 1; i < len(tree.Merges); i++ {
		require.GreaterOrEqual(t, tree.Merges[i].Distance, tree.Merges[i-1].Distance)
	}
}

func TestCluster_TooFewObjectsReturnsEmptyTree(t *testing.T) {
	data := [][]float64{{1, 2}}
	mask := [][]bool{{true, true}}
	b, err := dataset.New(data, mask, []float64{1, 1}, false)
	require.NoError(t, err)

	tree := hierarchical.Cluster(b, metric.Euclidean, hierarchical.SingleLinkage, nil, false)
	require.Empty(t, tree.Merges)
}

func TestCluster_ScalingDividesLinkageDistances(t *testing.T) {
	b := unitSquare(t)
	raw := hierarchical.Cluster(b, metric.Euclidean, hierarchical.SingleLinkage, nil, false)
	scaled := hierarchical.Cluster(b, metric.Euclidean, hierarchical.SingleLinkage, nil, true)

	for i := range raw.Merges {
		require.NotEqual(t, raw.Merges[i].Distance, 0.0)
		require.LessOrEqual(t, scaled.Merges[i].Distance, raw.Merges[i].Distance+1e-9)
	}
}

func TestNode_LeafAndInternalRoundTrip(t *testing.T) {
	require.True(t, hierarchical.Leaf(3).IsLeaf())
	require.Equal(t, 3, hierarchical.Leaf(3).Index())
	require.False(t, hierarchical.Internal(2).IsLeaf())
	require.Equal(t, 2, hierarchical.Internal(2).Index())
}
