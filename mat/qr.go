// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "math"

// QR is the Householder QR decomposition of an m×n matrix A (m >= n):
// A = Q·R, with Q (m×n) having orthonormal columns and R (n×n) upper
// triangular, the economy shapes GetQ and GetR return.
//
// Based on the QRDecomposition class from Jama 1.0.3.
type QR struct {
	qr   *Dense  // packed Householder vectors below the diagonal, R above it
	rdiag []float64
	m, n int
}

// Factorize computes the Householder QR decomposition of a and returns the
// receiver. Factorize panics with ShapeMismatch if a has more columns than
// rows.
func (qr *QR) Factorize(a *Dense) *QR {
	r, c := a.Dims()
	if c > r {
		panic(errShape)
	}
	qr.qr = a.Clone()
	qr.m, qr.n = r, c
	qr.rdiag = make([]float64, c)

	data := qr.qr
	for k := 0; k < c; k++ {
		var nrm float64
		for i := k; i < r; i++ {
			nrm = math.Hypot(nrm, data.at(i, k))
		}
		if nrm != 0 {
			if data.at(k, k) < 0 {
				nrm = -nrm
			}
			for i := k; i < r; i++ {
				data.Set(i, k, data.at(i, k)/nrm)
			}
			data.Set(k, k, data.at(k, k)+1)

			for j := k + 1; j < c; j++ {
				var s float64
				for i := k; i < r; i++ {
					s += data.at(i, k) * data.at(i, j)
				}
				s = -s / data.at(k, k)
				for i := k; i < r; i++ {
					data.Set(i, j, data.at(i, j)+s*data.at(i, k))
				}
			}
		}
		qr.rdiag[k] = -nrm
		if qr.rdiag[k] == 0 {
			defaultDiag.Warnf("mat: QR factorization kept with zero diagonal entry R[%d,%d]; matrix is rank deficient", k, k)
		}
	}
	return qr
}

// IsFullRank reports whether R has no zero diagonal entry.
func (qr *QR) IsFullRank() bool {
	for _, d := range qr.rdiag {
		if d == 0 {
			return false
		}
	}
	return true
}

// GetH returns the Householder vectors, packed below the diagonal of the
// factorized storage (column k holds the reflector used to zero column k
// below the diagonal).
func (qr *QR) GetH() *Dense {
	out := NewDense(qr.m, qr.n)
	for i := 0; i < qr.m; i++ {
		for j := 0; j < qr.n; j++ {
			if i >= j {
				out.Set(i, j, qr.qr.at(i, j))
			}
		}
	}
	return out
}

// GetR returns the n×n upper-triangular factor R.
func (qr *QR) GetR() *Dense {
	out := NewDense(qr.n, qr.n)
	for i := 0; i < qr.n; i++ {
		for j := 0; j < qr.n; j++ {
			switch {
			case i < j:
				out.Set(i, j, qr.qr.at(i, j))
			case i == j:
				out.Set(i, j, qr.rdiag[i])
			}
		}
	}
	return out
}

// GetQ returns the m×n factor Q with orthonormal columns (the "economy"
// orthogonal factor), built by applying the packed Householder reflectors
// to the identity.
func (qr *QR) GetQ() *Dense {
	out := NewDense(qr.m, qr.n)
	for k := qr.n - 1; k >= 0; k-- {
		for i := 0; i < qr.m; i++ {
			out.Set(i, k, 0)
		}
		out.Set(k, k, 1)
		for j := k; j < qr.n; j++ {
			if qr.qr.at(k, k) == 0 {
				continue
			}
			var s float64
			for i := k; i < qr.m; i++ {
				s += qr.qr.at(i, k) * out.at(i, j)
			}
			s = -s / qr.qr.at(k, k)
			for i := k; i < qr.m; i++ {
				out.Set(i, j, out.at(i, j)+s*qr.qr.at(i, k))
			}
		}
	}
	return out
}

// Solve returns the least-squares solution X minimizing ||A·X - b||,
// where A is the factorized matrix. Solve panics with RankDeficient if A
// is not full column rank, and with ShapeMismatch if b's row count does
// not match A's row count.
func (qr *QR) Solve(b *Dense) *Dense {
	br, bc := b.Dims()
	if br != qr.m {
		panic(errShape)
	}
	if !qr.IsFullRank() {
		panic(newError(RankDeficient, "matrix is rank deficient"))
	}

	x := b.Clone()
	for k := 0; k < qr.n; k++ {
		for j := 0; j < bc; j++ {
			var s float64
			for i := k; i < qr.m; i++ {
				s += qr.qr.at(i, k) * x.at(i, j)
			}
			if qr.qr.at(k, k) == 0 {
				continue
			}
			s = -s / qr.qr.at(k, k)
			for i := k; i < qr.m; i++ {
				x.Set(i, j, x.at(i, j)+s*qr.qr.at(i, k))
			}
		}
	}
	for k := qr.n - 1; k >= 0; k-- {
		for j := 0; j < bc; j++ {
			x.Set(k, j, x.at(k, j)/qr.rdiag[k])
		}
		for i := 0; i < k; i++ {
			for j := 0; j < bc; j++ {
				x.Set(i, j, x.at(i, j)-x.at(k, j)*qr.qr.at(i, k))
			}
		}
	}
	return x.Submatrix(0, 0, qr.n, bc)
}
