package kmeans

import (
	"github.com/go-numclust/numclust/centroid"
	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/metric"
	"github.com/go-numclust/numclust/rngsrc"
)

// randomAssign produces an initial assignment of n objects to k clusters:
// the first k objects of a random permutation each seed a distinct cluster
// (guaranteeing none start empty), and the remaining objects are assigned
// to a uniformly random cluster.
func randomAssign(k, n int, rng *rngsrc.Source) dataset.Assignment {
	order := rng.Permute(n)
	assignment := make(dataset.Assignment, n)
	for i := 0; i < k; i++ {
		assignment[order[i]] = i
	}
	for i := k; i < n; i++ {
		assignment[order[i]] = rng.UniformInt(0, k-1)
	}
	return assignment
}

// emSweep runs one full EM pass to local convergence: random initial
// assignment, then repeated centroid recomputation and nearest-centroid
// reassignment (skipping any move that would empty a cluster), detecting
// convergence either when a sweep makes no move or when the assignment
// matches a periodically doubled snapshot (a limit cycle).
//
// The returned centroids are whichever were computed at the start of the
// final sweep — not recomputed after that sweep's moves — matching the
// original EM loop's contract that callers measure error against the same
// centroid snapshot the reassignment decisions were made from.
func emSweep(b *dataset.ExpressionBlock, k int, kernel metric.Kernel, builder centroid.Builder, rng *rngsrc.Source) (dataset.Assignment, *dataset.CentroidBlock) {
	n := b.NumObjects()
	nFeatures := b.NumFeatures()
	assignment := randomAssign(k, n, rng)
	counts := assignment.Counts(k)

	var saved dataset.Assignment
	iteration := 0
	period := 10
	var centroids *dataset.CentroidBlock

	changed, same := true, false
	for changed && !same {
		if iteration%period == 0 {
			saved = assignment.Clone()
			period *= 2
		}
		iteration++

		centroids = builder(b, assignment, k)
		order := rng.Permute(n)
		changed = false

		for _, i := range order {
			jnow := assignment[i]
			if counts[jnow] <= 1 {
				continue
			}
			distance := kernel(nFeatures, b, centroids, b.Weight, i, jnow)
			best := jnow
			for j := 0; j < k; j++ {
				if j == jnow {
					continue
				}
				d := kernel(nFeatures, b, centroids, b.Weight, i, j)
				if d < distance {
					distance = d
					best = j
				}
			}
			if best != jnow {
				counts[jnow]--
				assignment[i] = best
				counts[best]++
				changed = true
			}
		}
		same = assignment.Equal(saved)
	}
	return assignment, centroids
}
