// Package interdist computes the distance between two named subsets of
// objects, under a choice of summary (mean, median, nearest, farthest, or
// average pairwise) and the same dissimilarity kernels used elsewhere in
// this module.
package interdist
