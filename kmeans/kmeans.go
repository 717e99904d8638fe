package kmeans

import (
	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/metric"
	"github.com/go-numclust/numclust/rngsrc"
)

// Result holds the outcome of a Cluster run.
type Result struct {
	// Assignment maps each object to its cluster, 0..K-1.
	Assignment dataset.Assignment
	// Centroids holds the cluster centers corresponding to Assignment.
	Centroids *dataset.CentroidBlock
	// Error is the summed dissimilarity of every object to its own centroid.
	Error float64
	// Found counts how many of the Passes restarts converged to a solution
	// equivalent (up to cluster relabelling) to the best one kept. A single
	// restart that is never matched again leaves Found at 1.
	Found int
}

// Cluster partitions b into opts.K clusters via EM, restarting opts.Passes
// times and keeping the lowest-error solution. Restarts that converge to a
// relabelling of the kept solution increment Found instead of being
// compared on error, mirroring runs that repeatedly rediscover the same
// partition.
//
// If b has fewer objects than opts.K, Cluster returns a zero Result with
// Found == 0; see ClusterStrict for an error-returning variant.
func Cluster(b *dataset.ExpressionBlock, opts Options, rng *rngsrc.Source) Result {
	if b.NumObjects() < opts.K {
		return Result{}
	}
	kernel := metric.Select(opts.Metric)
	builder := opts.builder()
	nFeatures := b.NumFeatures()

	assignment, centroids := emSweep(b, opts.K, kernel, builder, rng)
	errSum := totalError(b, assignment, centroids, kernel, nFeatures)
	found := 1

	for pass := 1; pass < opts.Passes; pass++ {
		tAssignment, tCentroids := emSweep(b, opts.K, kernel, builder, rng)
		if relabelling(tAssignment, assignment, opts.K) {
			found++
			continue
		}
		tErr := totalError(b, tAssignment, tCentroids, kernel, nFeatures)
		if tErr < errSum {
			found = 1
			errSum = tErr
			assignment = tAssignment
			centroids = tCentroids
		}
	}

	return Result{Assignment: assignment, Centroids: centroids, Error: errSum, Found: found}
}

// ClusterStrict behaves like Cluster but reports the too-few-objects case
// as ErrTooFewElements rather than a zero-valued Result.
func ClusterStrict(b *dataset.ExpressionBlock, opts Options, rng *rngsrc.Source) (Result, error) {
	if b.NumObjects() < opts.K {
		return Result{}, ErrTooFewElements
	}
	return Cluster(b, opts, rng), nil
}

func totalError(b *dataset.ExpressionBlock, assignment dataset.Assignment, centroids *dataset.CentroidBlock, kernel metric.Kernel, nFeatures int) float64 {
	var sum float64
	for i, j := range assignment {
		sum += kernel(nFeatures, b, centroids, b.Weight, i, j)
	}
	return sum
}

// relabelling reports whether candidate is equivalent to baseline up to a
// consistent permutation of cluster labels: every object assigned to the
// same candidate cluster must also share a single baseline cluster.
func relabelling(candidate, baseline dataset.Assignment, k int) bool {
	mapping := make([]int, k)
	for i := range mapping {
		mapping[i] = -1
	}
	for i, j := range candidate {
		if mapping[j] == -1 {
			mapping[j] = baseline[i]
		} else if mapping[j] != baseline[i] {
			return false
		}
	}
	return true
}
