package som

import (
	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/metric"
	"github.com/go-numclust/numclust/rngsrc"
)

// Options configures a self-organizing map training run.
type Options struct {
	// NX, NY are the grid dimensions.
	NX, NY int
	// Tau0 is the initial learning rate; it decays linearly to 0 over NIter.
	Tau0 float64
	// NIter is the number of training iterations.
	NIter int
	// Metric selects the dissimilarity kernel; unrecognized tags silently
	// fall back to Euclidean.
	Metric metric.Tag
	// Assign requests that Cluster also report each object's nearest cell.
	Assign bool
}

// Cluster is the dispatcher: it trains grid (allocating a fresh one from
// opts if grid is nil) and, if opts.Assign is set, reports every object's
// nearest cell once training completes. If b has fewer than two objects,
// Cluster returns grid as supplied (nil if none was) and a nil assignment
// without training.
func Cluster(b *dataset.ExpressionBlock, opts Options, grid *Grid, rng *rngsrc.Source) (*Grid, []Cell) {
	if b.NumObjects() < 2 {
		return grid, nil
	}
	if grid == nil {
		grid = NewGrid(opts.NX, opts.NY, b.NumFeatures(), rng)
	}
	Train(b, grid, opts.Tau0, opts.NIter, opts.Metric, rng)

	var assignment []Cell
	if opts.Assign {
		assignment = Assign(b, grid, opts.Metric)
	}
	return grid, assignment
}

// ClusterStrict behaves like Cluster but reports the fewer-than-two-objects
// case as ErrTooFewObjects rather than returning without training.
func ClusterStrict(b *dataset.ExpressionBlock, opts Options, grid *Grid, rng *rngsrc.Source) (*Grid, []Cell, error) {
	if b.NumObjects() < 2 {
		return nil, nil, ErrTooFewObjects
	}
	grid, assignment := Cluster(b, opts, grid, rng)
	return grid, assignment, nil
}
