// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "math"

// SVD is the singular value decomposition of an m×n matrix A: A = U·S·Vᵀ,
// with U (m×min(m,n)) and V (n×n) orthogonal and S diagonal with
// non-negative, descending entries.
//
// Computed by Householder bidiagonalization followed by the implicit-shift
// QR algorithm on the bidiagonal form, the classical two-phase scheme from
// the SingularValueDecomposition class in Jama 1.0.3.
type SVD struct {
	u, v *Dense
	s    []float64
	m, n int
}

// NewSVD computes and returns the singular value decomposition of a.
func NewSVD(a *Dense) *SVD {
	svd := &SVD{}
	svd.factorize(a)
	return svd
}

func (svd *SVD) factorize(arg *Dense) {
	m, n := arg.Dims()
	a := arg.Clone()
	svd.m, svd.n = m, n

	nu := min(m, n)
	svd.s = make([]float64, min(m+1, n))
	svd.u = NewDense(m, nu)
	svd.v = NewDense(n, n)
	e := make([]float64, n)
	work := make([]float64, m)

	nct := min(m-1, n)
	nrt := max(0, min(n-2, m))
	for k := 0; k < max(nct, nrt); k++ {
		if k < nct {
			svd.s[k] = 0
			for i := k; i < m; i++ {
				svd.s[k] = math.Hypot(svd.s[k], a.at(i, k))
			}
			if svd.s[k] != 0 {
				if a.at(k, k) < 0 {
					svd.s[k] = -svd.s[k]
				}
				for i := k; i < m; i++ {
					a.Set(i, k, a.at(i, k)/svd.s[k])
				}
				a.Set(k, k, a.at(k, k)+1)
			}
			svd.s[k] = -svd.s[k]
		}
		for j := k + 1; j < n; j++ {
			if k < nct && svd.s[k] != 0 {
				var t float64
				for i := k; i < m; i++ {
					t += a.at(i, k) * a.at(i, j)
				}
				t = -t / a.at(k, k)
				for i := k; i < m; i++ {
					a.Set(i, j, a.at(i, j)+t*a.at(i, k))
				}
			}
			e[j] = a.at(k, j)
		}
		if k < nct {
			for i := k; i < m; i++ {
				svd.u.Set(i, k, a.at(i, k))
			}
		}
		if k < nrt {
			e[k] = 0
			for i := k + 1; i < n; i++ {
				e[k] = math.Hypot(e[k], e[i])
			}
			if e[k] != 0 {
				if e[k+1] < 0 {
					e[k] = -e[k]
				}
				for i := k + 1; i < n; i++ {
					e[i] /= e[k]
				}
				e[k+1] += 1
			}
			e[k] = -e[k]
			if k+1 < m && e[k] != 0 {
				for i := k + 1; i < m; i++ {
					work[i] = 0
				}
				for j := k + 1; j < n; j++ {
					for i := k + 1; i < m; i++ {
						work[i] += e[j] * a.at(i, j)
					}
				}
				for j := k + 1; j < n; j++ {
					t := -e[j] / e[k+1]
					for i := k + 1; i < m; i++ {
						a.Set(i, j, a.at(i, j)+t*work[i])
					}
				}
			}
			for i := k + 1; i < n; i++ {
				svd.v.Set(i, k, e[i])
			}
		}
	}

	p := min(n, m+1)
	if nct < n {
		svd.s[nct] = a.at(nct, nct)
	}
	if m < p {
		svd.s[p-1] = 0
	}
	if nrt+1 < p {
		e[nrt] = a.at(nrt, p-1)
	}
	e[p-1] = 0

	for j := nct; j < nu; j++ {
		for i := 0; i < m; i++ {
			svd.u.Set(i, j, 0)
		}
		svd.u.Set(j, j, 1)
	}
	for k := nct - 1; k >= 0; k-- {
		if svd.s[k] != 0 {
			for j := k + 1; j < nu; j++ {
				var t float64
				for i := k; i < m; i++ {
					t += svd.u.at(i, k) * svd.u.at(i, j)
				}
				t = -t / svd.u.at(k, k)
				for i := k; i < m; i++ {
					svd.u.Set(i, j, svd.u.at(i, j)+t*svd.u.at(i, k))
				}
			}
			for i := k; i < m; i++ {
				svd.u.Set(i, k, -svd.u.at(i, k))
			}
			svd.u.Set(k, k, 1+svd.u.at(k, k))
			for i := 0; i < k-1; i++ {
				svd.u.Set(i, k, 0)
			}
		} else {
			for i := 0; i < m; i++ {
				svd.u.Set(i, k, 0)
			}
			svd.u.Set(k, k, 1)
		}
	}

	for k := n - 1; k >= 0; k-- {
		if k < nrt && e[k] != 0 {
			for j := k + 1; j < n; j++ {
				var t float64
				for i := k + 1; i < n; i++ {
					t += svd.v.at(i, k) * svd.v.at(i, j)
				}
				t = -t / svd.v.at(k+1, k)
				for i := k + 1; i < n; i++ {
					svd.v.Set(i, j, svd.v.at(i, j)+t*svd.v.at(i, k))
				}
			}
		}
		for i := 0; i < n; i++ {
			svd.v.Set(i, k, 0)
		}
		svd.v.Set(k, k, 1)
	}

	pp := p - 1
	eps := math.Pow(2, -52)
	tiny := math.Pow(2, -966)
	for p > 0 {
		var k, kase int
		for k = p - 2; k >= -1; k-- {
			if k == -1 {
				break
			}
			if math.Abs(e[k]) <= tiny+eps*(math.Abs(svd.s[k])+math.Abs(svd.s[k+1])) {
				e[k] = 0
				break
			}
		}
		if k == p-2 {
			kase = 4
		} else {
			var ks int
			for ks = p - 1; ks >= k; ks-- {
				if ks == k {
					break
				}
				t := 0.0
				if ks != p {
					t += math.Abs(e[ks])
				}
				if ks != k+1 {
					t += math.Abs(e[ks-1])
				}
				if math.Abs(svd.s[ks]) <= tiny+eps*t {
					svd.s[ks] = 0
					break
				}
			}
			switch {
			case ks == k:
				kase = 3
			case ks == p-1:
				kase = 1
			default:
				kase = 2
				k = ks
			}
		}
		k++

		switch kase {
		case 1:
			f := e[p-2]
			e[p-2] = 0
			for j := p - 2; j >= k; j-- {
				t := math.Hypot(svd.s[j], f)
				cs := svd.s[j] / t
				sn := f / t
				svd.s[j] = t
				if j != k {
					f = -sn * e[j-1]
					e[j-1] = cs * e[j-1]
				}
				for i := 0; i < n; i++ {
					t = cs*svd.v.at(i, j) + sn*svd.v.at(i, p-1)
					svd.v.Set(i, p-1, -sn*svd.v.at(i, j)+cs*svd.v.at(i, p-1))
					svd.v.Set(i, j, t)
				}
			}
		case 2:
			f := e[k-1]
			e[k-1] = 0
			for j := k; j < p; j++ {
				t := math.Hypot(svd.s[j], f)
				cs := svd.s[j] / t
				sn := f / t
				svd.s[j] = t
				f = -sn * e[j]
				e[j] = cs * e[j]
				for i := 0; i < m; i++ {
					t = cs*svd.u.at(i, j) + sn*svd.u.at(i, k-1)
					svd.u.Set(i, k-1, -sn*svd.u.at(i, j)+cs*svd.u.at(i, k-1))
					svd.u.Set(i, j, t)
				}
			}
		case 3:
			scale := math.Max(math.Max(math.Max(math.Max(
				math.Abs(svd.s[p-1]), math.Abs(svd.s[p-2])), math.Abs(e[p-2])),
				math.Abs(svd.s[k])), math.Abs(e[k]))
			sp := svd.s[p-1] / scale
			spm1 := svd.s[p-2] / scale
			epm1 := e[p-2] / scale
			sk := svd.s[k] / scale
			ek := e[k] / scale
			b := ((spm1+sp)*(spm1-sp) + epm1*epm1) / 2
			c := (sp * epm1) * (sp * epm1)
			var shift float64
			if b != 0 || c != 0 {
				shift = math.Sqrt(b*b + c)
				if b < 0 {
					shift = -shift
				}
				shift = c / (b + shift)
			}
			f := (sk+sp)*(sk-sp) + shift
			g := sk * ek
			for j := k; j < p-1; j++ {
				t := math.Hypot(f, g)
				cs := f / t
				sn := g / t
				if j != k {
					e[j-1] = t
				}
				f = cs*svd.s[j] + sn*e[j]
				e[j] = cs*e[j] - sn*svd.s[j]
				g = sn * svd.s[j+1]
				svd.s[j+1] = cs * svd.s[j+1]
				for i := 0; i < n; i++ {
					t = cs*svd.v.at(i, j) + sn*svd.v.at(i, j+1)
					svd.v.Set(i, j+1, -sn*svd.v.at(i, j)+cs*svd.v.at(i, j+1))
					svd.v.Set(i, j, t)
				}
				t = math.Hypot(f, g)
				cs = f / t
				sn = g / t
				svd.s[j] = t
				f = cs*e[j] + sn*svd.s[j+1]
				svd.s[j+1] = -sn*e[j] + cs*svd.s[j+1]
				g = sn * e[j+1]
				e[j+1] = cs * e[j+1]
				if j < m-1 {
					for i := 0; i < m; i++ {
						t = cs*svd.u.at(i, j) + sn*svd.u.at(i, j+1)
						svd.u.Set(i, j+1, -sn*svd.u.at(i, j)+cs*svd.u.at(i, j+1))
						svd.u.Set(i, j, t)
					}
				}
			}
			e[p-2] = f
		case 4:
			if svd.s[k] <= 0 {
				if svd.s[k] < 0 {
					svd.s[k] = -svd.s[k]
				} else {
					svd.s[k] = 0
				}
				for i := 0; i <= pp; i++ {
					svd.v.Set(i, k, -svd.v.at(i, k))
				}
			}
			for k < pp {
				if svd.s[k] >= svd.s[k+1] {
					break
				}
				svd.s[k], svd.s[k+1] = svd.s[k+1], svd.s[k]
				if k < n-1 {
					swapCols(svd.v, k, k+1)
				}
				if k < m-1 {
					swapCols(svd.u, k, k+1)
				}
				k++
			}
			p--
		}
	}
}

func swapCols(m *Dense, a, b int) {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		m.mat.Data[i*m.mat.Stride+a], m.mat.Data[i*m.mat.Stride+b] =
			m.mat.Data[i*m.mat.Stride+b], m.mat.Data[i*m.mat.Stride+a]
	}
}

// GetU returns the left singular vectors as an m×min(m,n) matrix.
func (svd *SVD) GetU() *Dense { return svd.u.Clone() }

// GetV returns the right singular vectors as an n×n matrix.
func (svd *SVD) GetV() *Dense { return svd.v.Clone() }

// GetSingularValues returns the singular values in descending order.
func (svd *SVD) GetSingularValues() []float64 {
	out := make([]float64, len(svd.s))
	copy(out, svd.s)
	return out
}

// GetS returns the diagonal singular value matrix S, shaped min(m,n)×n.
func (svd *SVD) GetS() *Dense {
	k := min(svd.m, svd.n)
	out := NewDense(k, svd.n)
	for i := 0; i < k && i < len(svd.s); i++ {
		out.Set(i, i, svd.s[i])
	}
	return out
}

// Norm2 returns the 2-norm (largest singular value) of the factorized
// matrix.
func (svd *SVD) Norm2() float64 {
	if len(svd.s) == 0 {
		return 0
	}
	return svd.s[0]
}

// Cond returns the condition number max(S)/min(S) of the factorized
// matrix.
func (svd *SVD) Cond() float64 {
	k := min(svd.m, svd.n)
	if k == 0 {
		return 0
	}
	return svd.s[0] / svd.s[k-1]
}

// Rank returns the effective numerical rank of the factorized matrix: the
// count of singular values greater than tol times the largest one. A tol
// of 0 uses the standard machine-epsilon-scaled threshold.
func (svd *SVD) Rank(tol float64) int {
	if tol <= 0 {
		eps := math.Pow(2, -52)
		tol = float64(max(svd.m, svd.n)) * svd.s[0] * eps
	} else {
		tol *= svd.s[0]
	}
	r := 0
	for _, v := range svd.s {
		if v > tol {
			r++
		}
	}
	return r
}
