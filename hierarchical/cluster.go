package hierarchical

import (
	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/distmatrix"
	"github.com/go-numclust/numclust/metric"
)

// Linkage selects the rule used to measure distance between composite
// clusters during agglomeration.
type Linkage byte

const (
	SingleLinkage   Linkage = 's'
	CompleteLinkage Linkage = 'm'
	AverageLinkage  Linkage = 'a'
	CentroidLinkage Linkage = 'c'
)

// Cluster is the dispatcher: it builds the distance matrix if the caller
// does not supply one, runs the selected linkage engine, and optionally
// rescales every linkage distance by distmatrix.GetScale. Any Linkage
// value other than the four named constants falls back to AverageLinkage.
//
// Single-, complete-, and average-linkage only need the supplied or
// computed distance matrix; centroid-linkage always needs b itself, even
// when d is non-nil, because it recomputes genuine centroids at every
// merge step.
func Cluster(b *dataset.ExpressionBlock, tag metric.Tag, linkage Linkage, d distmatrix.Matrix, applyScale bool) Tree {
	if b.NumObjects() < 2 {
		return Tree{}
	}
	if d == nil {
		d = distmatrix.Build(b, tag)
	}

	var tree Tree
	switch linkage {
	case SingleLinkage:
		tree = Single(d)
	case CompleteLinkage:
		tree = Complete(d)
	case CentroidLinkage:
		tree = Centroid(b, tag, d)
	default:
		tree = Average(d)
	}

	if applyScale {
		scale := distmatrix.GetScale(d, tag)
		if scale != 0 {
			for i := range tree.Merges {
				tree.Merges[i].Distance /= scale
			}
		}
	}
	return tree
}

// ClusterStrict behaves like Cluster but reports the fewer-than-two-objects
// case as ErrTooFewObjects rather than an empty Tree.
func ClusterStrict(b *dataset.ExpressionBlock, tag metric.Tag, linkage Linkage, d distmatrix.Matrix, applyScale bool) (Tree, error) {
	if b.NumObjects() < 2 {
		return Tree{}, ErrTooFewObjects
	}
	return Cluster(b, tag, linkage, d, applyScale), nil
}
