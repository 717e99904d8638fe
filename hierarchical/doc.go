// Package hierarchical builds agglomerative cluster trees from a pairwise
// distance matrix under single-, complete-, average-, or centroid-linkage,
// using destructive compaction-by-swap to shrink the active matrix in place
// at each merge step.
package hierarchical
