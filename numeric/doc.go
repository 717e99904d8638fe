// Package numeric provides the small numeric primitives the rest of
// numclust builds on: mean, median-by-selection, an index sort, average-tie
// ranks, and a one-sided Jacobi singular value decomposition.
package numeric
