// Package distmatrix builds the jagged, lower-triangular pairwise distance
// matrix the hierarchical clustering engines operate on, and computes the
// scale factor used to rescale linkage distances into [0, 2].
package distmatrix
