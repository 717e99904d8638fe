// Package centroid builds cluster centroid blocks — mean or median
// summaries of every cluster member's present features — given a current
// object-to-cluster assignment.
package centroid
