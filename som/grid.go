package som

import (
	"math"

	"github.com/go-numclust/numclust/rngsrc"
)

// Grid is a rectangular array of unit-normalized prototype vectors.
type Grid struct {
	NX, NY int
	Proto  [][][]float64
}

// cellVector adapts a single prototype cell to dataset.Vector: every
// feature is always present, matching the all-ones dummy mask the original
// algorithm compares prototypes under.
type cellVector []float64

func (c cellVector) At(_, feature int) (float64, bool) { return c[feature], true }

// NewGrid allocates an nx-by-ny grid of nFeatures-dimensional prototypes,
// each initialized from independent uniforms on [-1, 1] and L2-normalized.
func NewGrid(nx, ny, nFeatures int, rng *rngsrc.Source) *Grid {
	proto := make([][][]float64, nx)
	for ix := range proto {
		proto[ix] = make([][]float64, ny)
		for iy := range proto[ix] {
			cell := make([]float64, nFeatures)
			var sum float64
			for f := range cell {
				v := rng.UniformFloat(-1, 1)
				cell[f] = v
				sum += v * v
			}
			sum = math.Sqrt(sum)
			if sum > 0 {
				for f := range cell {
					cell[f] /= sum
				}
			}
			proto[ix][iy] = cell
		}
	}
	return &Grid{NX: nx, NY: ny, Proto: proto}
}
