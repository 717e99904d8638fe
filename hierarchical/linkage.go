package hierarchical

import "github.com/go-numclust/numclust/distmatrix"

// Single performs pairwise single-linkage clustering on d, the new
// composite cluster's distance to any surviving cluster being the minimum
// of its two children's distances. d is mutated in place.
func Single(d distmatrix.Matrix) Tree {
	return linkByRowRule(d, func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	})
}

// Complete performs pairwise complete- (maximum-) linkage clustering on d.
// d is mutated in place.
func Complete(d distmatrix.Matrix) Tree {
	return linkByRowRule(d, func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	})
}

// linkByRowRule implements the shared compaction-by-swap scheme for
// linkage rules whose new-cluster distance is a pure function of the two
// merged children's distances to each surviving cluster (single and
// complete linkage).
func linkByRowRule(d distmatrix.Matrix, combine func(a, b float64) float64) Tree {
	nelements := d.N()
	if nelements < 2 {
		return Tree{}
	}
	clusterid := make([]int, nelements)
	for i := range clusterid {
		clusterid[i] = i
	}
	merges := make([]Merge, nelements-1)

	for nNodes := nelements; nNodes > 1; nNodes-- {
		isaved, jsaved := 1, 0
		distance := d[1][0]
		for i := 0; i < nNodes; i++ {
			for j := 0; j < i; j++ {
				if d[i][j] < distance {
					isaved, jsaved, distance = i, j, d[i][j]
				}
			}
		}
		step := nelements - nNodes
		merges[step] = Merge{Left: nodeFromID(clusterid[isaved]), Right: nodeFromID(clusterid[jsaved]), Distance: distance}

		for j := 0; j < jsaved; j++ {
			d[jsaved][j] = combine(d[isaved][j], d[jsaved][j])
		}
		for j := jsaved + 1; j < isaved; j++ {
			d[j][jsaved] = combine(d[isaved][j], d[j][jsaved])
		}
		for j := isaved + 1; j < nNodes; j++ {
			d[j][jsaved] = combine(d[j][isaved], d[j][jsaved])
		}

		for j := 0; j < isaved; j++ {
			d[isaved][j] = d[nNodes-1][j]
		}
		for j := isaved + 1; j < nNodes-1; j++ {
			d[j][isaved] = d[nNodes-1][j]
		}

		clusterid[jsaved] = -(step + 1)
		clusterid[isaved] = clusterid[nNodes-1]
	}
	return Tree{Merges: merges}
}

// Average performs pairwise average-linkage clustering on d, weighting
// each merged child's contribution by the number of leaves it contains.
// d is mutated in place.
func Average(d distmatrix.Matrix) Tree {
	nelements := d.N()
	if nelements < 2 {
		return Tree{}
	}
	clusterid := make([]int, nelements)
	number := make([]int, nelements)
	for i := range clusterid {
		clusterid[i] = i
		number[i] = 1
	}
	merges := make([]Merge, nelements-1)

	for nNodes := nelements; nNodes > 1; nNodes-- {
		isaved, jsaved := 1, 0
		distance := d[1][0]
		for i := 0; i < nNodes; i++ {
			for j := 0; j < i; j++ {
				if d[i][j] < distance {
					isaved, jsaved, distance = i, j, d[i][j]
				}
			}
		}
		step := nelements - nNodes
		merges[step] = Merge{Left: nodeFromID(clusterid[isaved]), Right: nodeFromID(clusterid[jsaved]), Distance: distance}

		sum := number[isaved] + number[jsaved]
		ni, nj := float64(number[isaved]), float64(number[jsaved])
		for j := 0; j < jsaved; j++ {
			d[jsaved][j] = (d[isaved][j]*ni + d[jsaved][j]*nj) / float64(sum)
		}
		for j := jsaved + 1; j < isaved; j++ {
			d[j][jsaved] = (d[isaved][j]*ni + d[j][jsaved]*nj) / float64(sum)
		}
		for j := isaved + 1; j < nNodes; j++ {
			d[j][jsaved] = (d[j][isaved]*ni + d[j][jsaved]*nj) / float64(sum)
		}

		for j := 0; j < isaved; j++ {
			d[isaved][j] = d[nNodes-1][j]
		}
		for j := isaved + 1; j < nNodes-1; j++ {
			d[j][isaved] = d[nNodes-1][j]
		}

		number[jsaved] = sum
		number[isaved] = number[nNodes-1]
		clusterid[jsaved] = -(step + 1)
		clusterid[isaved] = clusterid[nNodes-1]
	}
	return Tree{Merges: merges}
}
