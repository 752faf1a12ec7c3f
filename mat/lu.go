// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "math"

// LU is the LU decomposition of an m×n matrix A with partial pivoting:
// P·A = L·U, where L is unit lower triangular, U is upper triangular, and P
// is the row permutation recorded in piv.
//
// Based on the LUDecomposition class from Jama 1.0.3, using Crout's
// column-by-column variant of Gaussian elimination rather than the
// textbook row-by-row (Doolittle) order.
type LU struct {
	lu      *Dense
	m, n    int
	piv     []int
	pivsign int
}

// Factorize computes the LU decomposition of a and returns the receiver,
// so that factorization can be chained directly off a zero-value LU:
// (&LU{}).Factorize(a).
func (lu *LU) Factorize(a *Dense) *LU {
	r, c := a.Dims()
	lu.lu = a.Clone()
	lu.m, lu.n = r, c
	lu.piv = make([]int, r)
	for i := range lu.piv {
		lu.piv[i] = i
	}
	lu.pivsign = 1

	data := lu.lu
	colj := make([]float64, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			colj[i] = data.at(i, j)
		}
		for i := 0; i < r; i++ {
			kmax := i
			if j < kmax {
				kmax = j
			}
			var s float64
			for k := 0; k < kmax; k++ {
				s += data.at(i, k) * colj[k]
			}
			colj[i] -= s
			data.Set(i, j, colj[i])
		}

		p := j
		for i := j + 1; i < r; i++ {
			if math.Abs(colj[i]) > math.Abs(colj[p]) {
				p = i
			}
		}
		if p != j {
			for k := 0; k < c; k++ {
				data.mat.Data[p*data.mat.Stride+k], data.mat.Data[j*data.mat.Stride+k] =
					data.mat.Data[j*data.mat.Stride+k], data.mat.Data[p*data.mat.Stride+k]
			}
			lu.piv[p], lu.piv[j] = lu.piv[j], lu.piv[p]
			lu.pivsign = -lu.pivsign
		}

		if j < r {
			if data.at(j, j) != 0 {
				for i := j + 1; i < r; i++ {
					data.Set(i, j, data.at(i, j)/data.at(j, j))
				}
			} else {
				defaultDiag.Warnf("mat: LU factorization kept with zero diagonal entry U[%d,%d]; matrix is singular", j, j)
			}
		}
	}
	return lu
}

// IsNonsingular reports whether U has no zero diagonal entry.
func (lu *LU) IsNonsingular() bool {
	n := lu.n
	if lu.m < n {
		n = lu.m
	}
	for j := 0; j < n; j++ {
		if lu.lu.at(j, j) == 0 {
			return false
		}
	}
	return true
}

// GetL returns the unit lower-triangular factor L, shaped m×min(m,n), with
// rows in the pivoted order P·A was factorized in.
func (lu *LU) GetL() *Dense {
	k := lu.m
	if lu.n < k {
		k = lu.n
	}
	out := NewDense(lu.m, k)
	for i := 0; i < lu.m; i++ {
		for j := 0; j < k; j++ {
			switch {
			case i > j:
				out.Set(i, j, lu.lu.at(i, j))
			case i == j:
				out.Set(i, j, 1)
			}
		}
	}
	return out
}

// GetUnpivotedL returns GetL with its rows restored to the row order of the
// original, unfactorized matrix (undoing the permutation recorded in piv).
func (lu *LU) GetUnpivotedL() *Dense {
	l := lu.GetL()
	out := NewDense(l.mat.Rows, l.mat.Cols)
	for i, p := range lu.piv {
		copy(out.rowView(p), l.rowView(i))
	}
	return out
}

// GetU returns the upper-triangular factor U, shaped min(m,n)×n.
func (lu *LU) GetU() *Dense {
	k := lu.m
	if lu.n < k {
		k = lu.n
	}
	out := NewDense(k, lu.n)
	for i := 0; i < k; i++ {
		for j := i; j < lu.n; j++ {
			out.Set(i, j, lu.lu.at(i, j))
		}
	}
	return out
}

// GetPivot returns the row permutation applied during factorization: row i
// of P·A is row GetPivot()[i] of A.
func (lu *LU) GetPivot() []int {
	out := make([]int, len(lu.piv))
	copy(out, lu.piv)
	return out
}

// GetDoublePivot returns GetPivot as a column vector of float64 values, for
// callers that want the permutation as an algebraic quantity.
func (lu *LU) GetDoublePivot() *Dense {
	data := make([]float64, len(lu.piv))
	for i, p := range lu.piv {
		data[i] = float64(p)
	}
	return NewVector(len(data), data, true)
}

// Det returns the determinant of the factorized matrix. Det panics with
// ShapeMismatch if the matrix was not square.
func (lu *LU) Det() float64 {
	if lu.m != lu.n {
		panic(errSquare)
	}
	d := float64(lu.pivsign)
	for j := 0; j < lu.n; j++ {
		d *= lu.lu.at(j, j)
	}
	return d
}

// Solve returns X such that A·X = b, where A is the factorized matrix.
// Solve panics with an Error of kind Singular if A is singular, and with
// ShapeMismatch if b's row count does not equal A's row count.
func (lu *LU) Solve(b *Dense) *Dense {
	if lu.m != lu.n {
		panic(errSquare)
	}
	br, bc := b.Dims()
	if br != lu.m {
		panic(errShape)
	}
	if !lu.IsNonsingular() {
		panic(newError(Singular, "matrix is singular to working precision"))
	}

	n := lu.n
	x := NewDense(n, bc)
	for i, p := range lu.piv {
		copy(x.rowView(i), b.rowView(p))
	}

	for k := 0; k < n; k++ {
		for i := k + 1; i < n; i++ {
			lik := lu.lu.at(i, k)
			if lik == 0 {
				continue
			}
			xk := x.rowView(k)
			xi := x.rowView(i)
			for j := 0; j < bc; j++ {
				xi[j] -= xk[j] * lik
			}
		}
	}
	for k := n - 1; k >= 0; k-- {
		ukk := lu.lu.at(k, k)
		xk := x.rowView(k)
		for j := 0; j < bc; j++ {
			xk[j] /= ukk
		}
		for i := 0; i < k; i++ {
			uik := lu.lu.at(i, k)
			if uik == 0 {
				continue
			}
			xi := x.rowView(i)
			for j := 0; j < bc; j++ {
				xi[j] -= xk[j] * uik
			}
		}
	}
	return x
}

// Inverse returns the inverse of the factorized matrix, or a Singular error
// if it has none.
func (lu *LU) Inverse() (inv *Dense, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	inv = lu.Solve(Identity(lu.m))
	return inv, nil
}
