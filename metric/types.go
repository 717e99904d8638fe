package metric

import "github.com/go-numclust/numclust/dataset"

// Tag selects one of the eight dissimilarity kernels by its single-character
// code, matching the original library's wire-level convention.
type Tag byte

// The eight recognized tags. Any other byte value falls back to Euclidean
// (see Select).
const (
	Euclidean           Tag = 'e'
	Harmonic            Tag = 'h'
	Pearson             Tag = 'c'
	AbsolutePearson     Tag = 'a'
	Uncentered          Tag = 'u'
	AbsoluteUncentered  Tag = 'x'
	Spearman            Tag = 's'
	Kendall             Tag = 'k'
)

// Kernel computes a dissimilarity between object i1 of a and object i2 of b
// over n features, weighted by weight. Feature k is usable only when both
// a.At(i1,k) and b.At(i2,k) report presence.
type Kernel func(n int, a, b dataset.Vector, weight []float64, i1, i2 int) float64

// Select returns the Kernel bound to tag, defaulting silently to Euclidean
// for any unrecognized tag — this fallback is part of the external
// contract and must not change without an explicit opt-in.
func Select(tag Tag) Kernel {
	switch tag {
	case Harmonic:
		return HarmonicKernel
	case Pearson:
		return PearsonKernel
	case AbsolutePearson:
		return AbsolutePearsonKernel
	case Uncentered:
		return UncenteredKernel
	case AbsoluteUncentered:
		return AbsoluteUncenteredKernel
	case Spearman:
		return SpearmanKernel
	case Kendall:
		return KendallKernel
	default:
		return EuclideanKernel
	}
}
