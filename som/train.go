package som

import (
	"math"

	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/metric"
	"github.com/go-numclust/numclust/rngsrc"
)

// Train runs niter winner-take-all update iterations over grid: one
// randomly ordered object is visited per iteration (the full visiting
// order is a single permutation fixed at the start, reused cyclically
// once every object has been seen); the closest prototype under kernel is
// found, and every cell within the linearly shrinking neighborhood radius
// is nudged toward the object's normalized feature vector and
// re-normalized.
//
// Each candidate cell is always read fresh from grid at comparison time,
// so a cell is never compared against itself in place of the candidate
// being evaluated.
func Train(b *dataset.ExpressionBlock, grid *Grid, tau0 float64, niter int, tag metric.Tag, rng *rngsrc.Source) {
	n := b.NumObjects()
	nFeatures := b.NumFeatures()
	kernel := metric.Select(tag)
	maxRadius := math.Sqrt(float64(grid.NX*grid.NX + grid.NY*grid.NY))

	norm := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for f := 0; f < nFeatures; f++ {
			v, _ := b.At(i, f)
			sum += v * v
		}
		sum = math.Sqrt(sum)
		if sum == 0 {
			sum = 1
		}
		norm[i] = sum
	}

	order := rng.Permute(n)

	for iter := 0; iter < niter; iter++ {
		iobject := order[iter%n]
		radius := maxRadius * (1 - float64(iter)/float64(niter))
		tau := tau0 * (1 - float64(iter)/float64(niter))

		ixBest, iyBest := winner(b, grid, kernel, nFeatures, iobject)

		for ix := 0; ix < grid.NX; ix++ {
			for iy := 0; iy < grid.NY; iy++ {
				dx, dy := float64(ix-ixBest), float64(iy-iyBest)
				if math.Sqrt(dx*dx+dy*dy) >= radius {
					continue
				}
				cell := grid.Proto[ix][iy]
				var sum float64
				for f := 0; f < nFeatures; f++ {
					v, _ := b.At(iobject, f)
					cell[f] += tau * (v/norm[iobject] - cell[f])
					sum += cell[f] * cell[f]
				}
				sum = math.Sqrt(sum)
				if sum > 0 {
					for f := range cell {
						cell[f] /= sum
					}
				}
			}
		}
	}
}

// winner finds the grid cell whose prototype is closest to object under
// kernel.
func winner(b *dataset.ExpressionBlock, grid *Grid, kernel metric.Kernel, nFeatures, object int) (int, int) {
	ixBest, iyBest := 0, 0
	closest := kernel(nFeatures, b, cellVector(grid.Proto[0][0]), b.Weight, object, 0)
	for ix := 0; ix < grid.NX; ix++ {
		for iy := 0; iy < grid.NY; iy++ {
			d := kernel(nFeatures, b, cellVector(grid.Proto[ix][iy]), b.Weight, object, 0)
			if d < closest {
				closest = d
				ixBest, iyBest = ix, iy
			}
		}
	}
	return ixBest, iyBest
}

// Cell identifies the grid position an object was assigned to.
type Cell struct {
	IX, IY int
}

// Assign maps every object in b to the coordinates of its nearest grid
// cell under kernel, without modifying the grid.
func Assign(b *dataset.ExpressionBlock, grid *Grid, tag metric.Tag) []Cell {
	n := b.NumObjects()
	nFeatures := b.NumFeatures()
	kernel := metric.Select(tag)

	out := make([]Cell, n)
	for i := 0; i < n; i++ {
		ix, iy := winner(b, grid, kernel, nFeatures, i)
		out[i] = Cell{IX: ix, IY: iy}
	}
	return out
}
