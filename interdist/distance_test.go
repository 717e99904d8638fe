package interdist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/interdist"
	"github.com/go-numclust/numclust/metric"
)

func fourObjects(t *testing.T) *dataset.ExpressionBlock {
	t.Helper()
	data := [][]float64{{0, 0}, {0, 2}, {10, 10}, {10, 12}}
	mask := make([][]bool, len(data))
	for i := range mask {
		mask[i] = []bool{true, true}
	}
	b, err := dataset.New(data, mask, []float64{1, 1}, false)
	require.NoError(t, err)
	return b
}

func TestDistance_MeanMethodMatchesScenario(t *testing.T) {
	b := fourObjects(t)
	d := interdist.Distance(b, metric.Euclidean, interdist.Mean, []int{0, 1}, []int{2, 3})
	require.InDelta(t, 200.0, d, 1e-9)
}

func TestDistance_EmptyClusterReturnsZero(t *testing.T) {
	b := fourObjects(t)
	d := interdist.Distance(b, metric.Euclidean, interdist.Mean, nil, []int{2, 3})
	require.Equal(t, 0.0, d)
}

func TestDistance_OutOfRangeIndexReturnsZero(t *testing.T) {
	b := fourObjects(t)
	d := interdist.Distance(b, metric.Euclidean, interdist.Mean, []int{0, 99}, []int{2, 3})
	require.Equal(t, 0.0, d)
}

func TestDistance_UnknownMethodReturnsZero(t *testing.T) {
	b := fourObjects(t)
	d := interdist.Distance(b, metric.Euclidean, interdist.Method('?'), []int{0, 1}, []int{2, 3})
	require.Equal(t, 0.0, d)
}

func TestDistance_NearestAndFarthestBracketAverage(t *testing.T) {
	b := fourObjects(t)
	nearest := interdist.Distance(b, metric.Euclidean, interdist.Nearest, []int{0, 1}, []int{2, 3})
	farthest := interdist.Distance(b, metric.Euclidean, interdist.Farthest, []int{0, 1}, []int{2, 3})
	average := interdist.Distance(b, metric.Euclidean, interdist.Average, []int{0, 1}, []int{2, 3})
	require.LessOrEqual(t, nearest, average)
	require.GreaterOrEqual(t, farthest, average)
}

func TestDistance_MedianMethodOverSinglePointClusters(t *testing.T) {
	b := fourObjects(t)
	d := interdist.Distance(b, metric.Euclidean, interdist.Median, []int{0}, []int{2})
	require.Greater(t, d, 0.0)
}

func TestDistanceStrict_EmptyClusterReturnsError(t *testing.T) {
	b := fourObjects(t)
	_, err := interdist.DistanceStrict(b, metric.Euclidean, interdist.Mean, nil, []int{2, 3})
	require.ErrorIs(t, err, interdist.ErrEmptyCluster)
}

func TestDistanceStrict_OutOfRangeIndexReturnsError(t *testing.T) {
	b := fourObjects(t)
	_, err := interdist.DistanceStrict(b, metric.Euclidean, interdist.Mean, []int{0, 99}, []int{2, 3})
	require.ErrorIs(t, err, interdist.ErrIndexOutOfRange)
}

func TestDistanceStrict_UnknownMethodReturnsError(t *testing.T) {
	b := fourObjects(t)
	_, err := interdist.DistanceStrict(b, metric.Euclidean, interdist.Method('?'), []int{0, 1}, []int{2, 3})
	require.ErrorIs(t, err, interdist.ErrUnknownMethod)
}

func TestDistanceStrict_SucceedsAndMatchesDistance(t *testing.T) {
	b := fourObjects(t)
	got, err := interdist.DistanceStrict(b, metric.Euclidean, interdist.Mean, []int{0, 1}, []int{2, 3})
	require.NoError(t, err)
	require.InDelta(t, 200.0, got, 1e-9)
}
