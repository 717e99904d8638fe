// Package kmeans implements k-means / k-medians partitioning via an EM
// reassignment loop with an empty-cluster guard and periodic-snapshot cycle
// detection, driven through multiple random restarts that keep the best
// solution found.
package kmeans
