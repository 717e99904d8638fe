package hierarchical

import (
	"github.com/go-numclust/numclust/dataset"
	"github.com/go-numclust/numclust/distmatrix"
	"github.com/go-numclust/numclust/metric"
)

// nodeGrid holds, per internal node and feature, the count-weighted mean of
// that node's members and how many leaves contributed a usable value. It
// implements dataset.Vector so the kernel can compare two node centroids,
// or a node centroid against an original data row, uniformly.
type nodeGrid struct {
	data  [][]float64
	count [][]int
}

func (g *nodeGrid) At(node, feature int) (float64, bool) {
	if g.count[node][feature] > 0 {
		return g.data[node][feature], true
	}
	return 0, false
}

// Centroid performs pairwise centroid-linkage clustering. Unlike Single,
// Complete, and Average, it always needs the original data (not just a
// distance matrix), since every merge step recomputes a genuine centroid
// and re-invokes the kernel against it rather than combining stored
// pairwise distances. d is the initial distance matrix and is mutated in
// place.
func Centroid(b *dataset.ExpressionBlock, tag metric.Tag, d distmatrix.Matrix) Tree {
	nelements := b.NumObjects()
	if nelements < 2 {
		return Tree{}
	}
	kernel := metric.Select(tag)
	nFeatures := b.NumFeatures()
	weight := b.Weight
	nnodes := nelements - 1

	distid := make([]int, nelements)
	for i := range distid {
		distid[i] = i
	}

	grid := &nodeGrid{
		data:  make([][]float64, nnodes),
		count: make([][]int, nnodes),
	}
	for i := range grid.data {
		grid.data[i] = make([]float64, nFeatures)
		grid.count[i] = make([]int, nFeatures)
	}

	merges := make([]Merge, nnodes)

	for inode := 0; inode < nnodes; inode++ {
		isaved, jsaved := 1, 0
		distance := d[1][0]
		for i := 0; i < nelements-inode; i++ {
			for j := 0; j < i; j++ {
				if d[i][j] < distance {
					distance = d[i][j]
					isaved, jsaved = i, j
				}
			}
		}
		merges[inode] = Merge{Left: nodeFromID(distid[jsaved]), Right: nodeFromID(distid[isaved]), Distance: distance}

		for f := 0; f < nFeatures; f++ {
			var sum float64
			var cnt int
			sum, cnt = accumulateChild(b, grid, distid[isaved], f, sum, cnt)
			sum, cnt = accumulateChild(b, grid, distid[jsaved], f, sum, cnt)
			grid.count[inode][f] = cnt
			if cnt > 0 {
				grid.data[inode][f] = sum / float64(cnt)
			} else {
				grid.data[inode][f] = 0
			}
		}

		last := nelements - inode - 1
		distid[isaved] = distid[last]
		for i := 0; i < isaved; i++ {
			d[isaved][i] = d[last][i]
		}
		for i := isaved + 1; i < last; i++ {
			d[i][isaved] = d[last][i]
		}

		distid[jsaved] = -(inode + 1)
		for i := 0; i < jsaved; i++ {
			d[jsaved][i] = distanceToSurvivor(kernel, nFeatures, grid, b, weight, inode, distid[i])
		}
		for i := jsaved + 1; i < last; i++ {
			d[i][jsaved] = distanceToSurvivor(kernel, nFeatures, grid, b, weight, inode, distid[i])
		}
	}
	return Tree{Merges: merges}
}

// accumulateChild folds one merged child's contribution to feature f of the
// new node's centroid into the running sum/count: the child's own leaf
// count and weighted sum if it is an internal node, or its single present
// value if it is an original object.
func accumulateChild(b *dataset.ExpressionBlock, grid *nodeGrid, childID, f int, sum float64, cnt int) (float64, int) {
	if childID < 0 {
		node := -childID - 1
		c := grid.count[node][f]
		return sum + grid.data[node][f]*float64(c), cnt + c
	}
	if v, present := b.At(childID, f); present {
		return sum + v, cnt + 1
	}
	return sum, cnt
}

// distanceToSurvivor computes the new node's distance to a surviving
// cluster slot, dispatching to a node-vs-node or node-vs-data comparison
// depending on whether that slot holds an internal node or an original
// object.
func distanceToSurvivor(kernel metric.Kernel, nFeatures int, grid *nodeGrid, b *dataset.ExpressionBlock, weight []float64, inode, otherID int) float64 {
	if otherID < 0 {
		return kernel(nFeatures, grid, grid, weight, inode, -otherID-1)
	}
	return kernel(nFeatures, grid, b, weight, inode, otherID)
}
