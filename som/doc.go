// Package som trains a rectangular self-organizing (Kohonen) map over a
// dataset and assigns objects to their nearest grid cell.
package som
