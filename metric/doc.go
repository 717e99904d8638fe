// Package metric implements the eight masked, weighted dissimilarity
// kernels numclust's clustering engines are built on: weighted Euclidean,
// harmonic Euclidean, Pearson, absolute Pearson, uncentered Pearson,
// absolute uncentered Pearson, Spearman, and Kendall's tau.
//
// All eight share one contract: given a feature count n, two dataset.Vector
// values (typically an *dataset.ExpressionBlock or *dataset.CentroidBlock),
// a weight vector of length n, and two object indices, they return a
// dissimilarity over the features both objects have present. An
// unrecognized Tag silently selects the Euclidean kernel, matching the
// original library's fallback contract.
package metric
