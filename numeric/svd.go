package numeric

import "math"

// jacobiTolerance bounds the rotation/convergence tests in JacobiSVD.
const jacobiTolerance = 1.0e-12

// JacobiSVD computes a singular value decomposition of the nRow x nCol
// matrix u (u[i][j], row-major) using one-sided Jacobi rotations: pairs of
// columns of u are rotated until they are numerically orthogonal, the
// column norms become the singular values, and u's columns (rescaled by
// their norms) become the left singular vectors.
//
// u is modified in place to hold the left singular vectors. The singular
// values are returned as s (length nCol). If wantV, the right singular
// vectors are accumulated and returned as an nCol x nCol matrix; otherwise v
// is nil.
func JacobiSVD(u [][]float64, wantV bool) (s []float64, v [][]float64) {
	nRow := len(u)
	if nRow == 0 {
		return nil, nil
	}
	nCol := len(u[0])

	s = make([]float64, nCol)
	if wantV {
		v = make([][]float64, nCol)
		for i := range v {
			v[i] = make([]float64, nCol)
			v[i][i] = 1.0
		}
	}

	eps := jacobiTolerance
	slimit := nCol / 4
	if slimit < 6 {
		slimit = 6
	}
	e2 := 10.0 * float64(nRow) * eps * eps
	tol := eps * 0.1
	estColRank := nCol

	rotCount := estColRank * (estColRank - 1) / 2
	sweepCount := 0
	for rotCount != 0 && sweepCount <= slimit {
		rotCount = estColRank * (estColRank - 1) / 2
		sweepCount++
		for j := 0; j < estColRank-1; j++ {
			for k := j + 1; k < estColRank; k++ {
				var p, q, r float64
				for i := 0; i < nRow; i++ {
					x0 := u[i][j]
					y0 := u[i][k]
					p += x0 * y0
					q += x0 * x0
					r += y0 * y0
				}
				s[j] = q
				s[k] = r

				var c0, s0 float64
				switch {
				case q >= r && (q <= e2*s[0] || math.Abs(p) <= tol*q):
					rotCount--
					continue
				case q >= r:
					p /= q
					rr := 1 - r/q
					vt := math.Sqrt(4*p*p + rr*rr)
					c0 = math.Sqrt(math.Abs(0.5 * (1 + rr/vt)))
					s0 = p / (vt * c0)
				default:
					p /= r
					qq := q/r - 1
					vt := math.Sqrt(4*p*p + qq*qq)
					s0 = math.Sqrt(math.Abs(0.5 * (1 - qq/vt)))
					if p < 0 {
						s0 = -s0
					}
					c0 = p / (vt * s0)
				}

				for i := 0; i < nRow; i++ {
					d1 := u[i][j]
					d2 := u[i][k]
					u[i][j] = d1*c0 + d2*s0
					u[i][k] = -d1*s0 + d2*c0
				}
				if wantV {
					for i := 0; i < nCol; i++ {
						d1 := v[i][j]
						d2 := v[i][k]
						v[i][j] = d1*c0 + d2*s0
						v[i][k] = -d1*s0 + d2*c0
					}
				}
			}
		}
		for estColRank >= 3 && s[estColRank-1] <= s[0]*tol+tol*tol {
			estColRank--
		}
	}

	for i := 0; i < nCol; i++ {
		s[i] = math.Sqrt(s[i])
	}
	for i := 0; i < nCol; i++ {
		if s[i] == 0 {
			continue
		}
		for j := 0; j < nRow; j++ {
			u[j][i] /= s[i]
		}
	}
	return s, v
}
