// Package dataset defines the expression-matrix data model shared by every
// clustering routine in numclust: a dense matrix of measurements, a parallel
// mask of present/missing entries, and a per-feature weight vector.
//
// Every other package in this module (metric, distmatrix, centroid, kmeans,
// hierarchical, som, interdist) operates on an ExpressionBlock or a
// CentroidBlock rather than on raw slices, so the masked/weighted/transpose
// semantics are defined exactly once.
package dataset
