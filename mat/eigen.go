// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "math"

// Eigen is the eigenvalue decomposition of a square matrix A: A = V·D·V⁻¹,
// where D is the (possibly block) diagonal eigenvalue matrix and V holds
// the eigenvectors as columns.
//
// Symmetric input follows the real-eigenvalue path: Householder reduction
// to tridiagonal form (tred2) followed by the implicit-shift (Wilkinson
// shift) QL algorithm (tql2). Unsymmetric input follows the general path:
// reduction to upper Hessenberg form (orthes) followed by the real
// double-shift Francis QR algorithm (hqr2), which can produce complex
// conjugate eigenvalue pairs reported via ImagPart.
//
// Ported from the classical JAMA EigenvalueDecomposition class.
type Eigen struct {
	n         int
	symmetric bool
	d, e      []float64
	v         *Dense
}

// Factorize computes the eigendecomposition of a and returns the receiver.
// Factorize panics with ShapeMismatch if a is not square.
func (eig *Eigen) Factorize(a *Dense) *Eigen {
	r, c := a.Dims()
	if r != c {
		panic(errSquare)
	}
	eig.n = r
	eig.d = make([]float64, r)
	eig.e = make([]float64, r)
	eig.v = NewDense(r, r)

	eig.symmetric = true
	for j := 0; j < r && eig.symmetric; j++ {
		for i := 0; i < r; i++ {
			if a.at(i, j) != a.at(j, i) {
				eig.symmetric = false
				break
			}
		}
	}

	if eig.symmetric {
		for i := 0; i < r; i++ {
			copy(eig.v.rowView(i), a.rowView(i))
		}
		eig.tred2()
		eig.tql2()
		return eig
	}

	h := a.Clone()
	ort := make([]float64, r)
	eig.orthes(h, ort)
	eig.hqr2(h)
	return eig
}

// IsSymmetric reports whether the factorized matrix was detected to be
// (exactly) symmetric, selecting which of the two algorithmic paths ran.
func (eig *Eigen) IsSymmetric() bool { return eig.symmetric }

// RealPart returns the real part of every eigenvalue.
func (eig *Eigen) RealPart() []float64 {
	out := make([]float64, len(eig.d))
	copy(out, eig.d)
	return out
}

// ImagPart returns the imaginary part of every eigenvalue (all zero for a
// symmetric matrix; possibly non-zero conjugate pairs otherwise).
func (eig *Eigen) ImagPart() []float64 {
	out := make([]float64, len(eig.e))
	copy(out, eig.e)
	return out
}

// GetV returns the matrix of eigenvectors, as columns.
func (eig *Eigen) GetV() *Dense { return eig.v.Clone() }

// GetD returns the block-diagonal eigenvalue matrix: a plain diagonal of
// RealPart for real eigenvalues, with 2×2 rotation blocks for each complex
// conjugate pair.
func (eig *Eigen) GetD() *Dense {
	n := eig.n
	out := NewDense(n, n)
	for i := 0; i < n; i++ {
		out.Set(i, i, eig.d[i])
		if eig.e[i] > 0 {
			out.Set(i, i+1, eig.e[i])
		} else if eig.e[i] < 0 {
			out.Set(i, i-1, eig.e[i])
		}
	}
	return out
}

// tred2 performs Householder reduction of a real symmetric matrix (held in
// eig.v) to tridiagonal form, accumulating the orthogonal similarity
// transform in eig.v and leaving the diagonal/subdiagonal in eig.d/eig.e.
func (eig *Eigen) tred2() {
	n := eig.n
	v := eig.v
	d := eig.d
	e := eig.e

	for j := 0; j < n; j++ {
		d[j] = v.at(n-1, j)
	}

	for i := n - 1; i > 0; i-- {
		var scale, h float64
		for k := 0; k < i; k++ {
			scale += math.Abs(d[k])
		}
		if scale == 0 {
			e[i] = d[i-1]
			for j := 0; j < i; j++ {
				d[j] = v.at(i-1, j)
				v.Set(i, j, 0)
				v.Set(j, i, 0)
			}
		} else {
			for k := 0; k < i; k++ {
				d[k] /= scale
				h += d[k] * d[k]
			}
			f := d[i-1]
			g := math.Sqrt(h)
			if f > 0 {
				g = -g
			}
			e[i] = scale * g
			h -= f * g
			d[i-1] = f - g
			for j := 0; j < i; j++ {
				e[j] = 0
			}
			for j := 0; j < i; j++ {
				f = d[j]
				v.Set(j, i, f)
				g = e[j] + v.at(j, j)*f
				for k := j + 1; k <= i-1; k++ {
					g += v.at(k, j) * d[k]
					e[k] += v.at(k, j) * f
				}
				e[j] = g
			}
			f = 0
			for j := 0; j < i; j++ {
				e[j] /= h
				f += e[j] * d[j]
			}
			hh := f / (h + h)
			for j := 0; j < i; j++ {
				e[j] -= hh * d[j]
			}
			for j := 0; j < i; j++ {
				f = d[j]
				g = e[j]
				for k := j; k <= i-1; k++ {
					v.Set(k, j, v.at(k, j)-(f*e[k]+g*d[k]))
				}
				d[j] = v.at(i-1, j)
				v.Set(i, j, 0)
			}
		}
		d[i] = h
	}

	for i := 0; i < n-1; i++ {
		v.Set(n-1, i, v.at(i, i))
		v.Set(i, i, 1)
		h := d[i+1]
		if h != 0 {
			for k := 0; k <= i; k++ {
				d[k] = v.at(k, i+1) / h
			}
			for j := 0; j <= i; j++ {
				var g float64
				for k := 0; k <= i; k++ {
					g += v.at(k, i+1) * v.at(k, j)
				}
				for k := 0; k <= i; k++ {
					v.Set(k, j, v.at(k, j)-g*d[k])
				}
			}
		}
		for k := 0; k <= i; k++ {
			v.Set(k, i+1, 0)
		}
	}
	for j := 0; j < n; j++ {
		d[j] = v.at(n-1, j)
		v.Set(n-1, j, 0)
	}
	v.Set(n-1, n-1, 1)
	e[0] = 0
}

// tql2 runs the implicit-shift (Wilkinson shift) QL algorithm on the
// tridiagonal form tred2 produced, accumulating eigenvectors into eig.v.
func (eig *Eigen) tql2() {
	n := eig.n
	v := eig.v
	d := eig.d
	e := eig.e

	for i := 1; i < n; i++ {
		e[i-1] = e[i]
	}
	e[n-1] = 0

	var f, tst1 float64
	eps := math.Pow(2, -52)
	for l := 0; l < n; l++ {
		tst1 = math.Max(tst1, math.Abs(d[l])+math.Abs(e[l]))
		m := l
		for m < n {
			if math.Abs(e[m]) <= eps*tst1 {
				break
			}
			m++
		}

		if m > l {
			for {
				g := d[l]
				p := (d[l+1] - g) / (2 * e[l])
				r := math.Hypot(p, 1)
				if p < 0 {
					r = -r
				}
				d[l] = e[l] / (p + r)
				d[l+1] = e[l] * (p + r)
				dl1 := d[l+1]
				h := g - d[l]
				for i := l + 2; i < n; i++ {
					d[i] -= h
				}
				f += h

				p = d[m]
				c := 1.0
				c2 := c
				c3 := c
				el1 := e[l+1]
				var s, s2 float64
				for i := m - 1; i >= l; i-- {
					c3 = c2
					c2 = c
					s2 = s
					g = c * e[i]
					h = c * p
					r = math.Hypot(p, e[i])
					e[i+1] = s * r
					s = e[i] / r
					c = p / r
					p = c*d[i] - s*g
					d[i+1] = h + s*(c*g+s*d[i])
					for k := 0; k < n; k++ {
						h = v.at(k, i+1)
						v.Set(k, i+1, s*v.at(k, i)+c*h)
						v.Set(k, i, c*v.at(k, i)-s*h)
					}
				}
				p = -s * s2 * c3 * el1 * e[l] / dl1
				e[l] = s * p
				d[l] = c * p

				if math.Abs(e[l]) <= eps*tst1 {
					break
				}
			}
		}
		d[l] += f
		e[l] = 0
	}

	for i := 0; i < n-1; i++ {
		k := i
		p := d[i]
		for j := i + 1; j < n; j++ {
			if d[j] < p {
				k = j
				p = d[j]
			}
		}
		if k != i {
			d[k] = d[i]
			d[i] = p
			for j := 0; j < n; j++ {
				t := v.at(j, i)
				v.Set(j, i, v.at(j, k))
				v.Set(j, k, t)
			}
		}
	}
}

// orthes reduces the nonsymmetric matrix h to upper Hessenberg form via
// Householder (orthogonal) similarity transformations, accumulating the
// orthogonal similarity transform into eig.v.
func (eig *Eigen) orthes(h *Dense, ort []float64) {
	n := eig.n
	v := eig.v
	low, high := 0, n-1

	for m := low + 1; m <= high-1; m++ {
		var scale float64
		for i := m; i <= high; i++ {
			scale += math.Abs(h.at(i, m-1))
		}
		if scale != 0 {
			var hNorm float64
			for i := high; i >= m; i-- {
				ort[i] = h.at(i, m-1) / scale
				hNorm += ort[i] * ort[i]
			}
			g := math.Sqrt(hNorm)
			if ort[m] > 0 {
				g = -g
			}
			hNorm -= ort[m] * g
			ort[m] -= g

			for j := m; j < n; j++ {
				var f float64
				for i := high; i >= m; i-- {
					f += ort[i] * h.at(i, j)
				}
				f /= hNorm
				for i := m; i <= high; i++ {
					h.Set(i, j, h.at(i, j)-f*ort[i])
				}
			}
			for i := 0; i <= high; i++ {
				var f float64
				for j := high; j >= m; j-- {
					f += ort[j] * h.at(i, j)
				}
				f /= hNorm
				for j := m; j <= high; j++ {
					h.Set(i, j, h.at(i, j)-f*ort[j])
				}
			}
			ort[m] = scale * ort[m]
			h.Set(m, m-1, scale*g)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				v.Set(i, j, 1)
			} else {
				v.Set(i, j, 0)
			}
		}
	}
	for m := high - 1; m >= low+1; m-- {
		if h.at(m, m-1) != 0 {
			for i := m + 1; i <= high; i++ {
				ort[i] = h.at(i, m-1)
			}
			for j := m; j <= high; j++ {
				var g float64
				for i := m; i <= high; i++ {
					g += ort[i] * v.at(i, j)
				}
				g = (g / ort[m]) / h.at(m, m-1)
				for i := m; i <= high; i++ {
					v.Set(i, j, v.at(i, j)+g*ort[i])
				}
			}
		}
	}
}

// hqr2 runs the real double-shift (Francis) QR algorithm on the Hessenberg
// form orthes produced, computing eigenvalues (possibly in complex
// conjugate pairs, reported via d/e) and eigenvectors (back-transformed
// into eig.v).
func (eig *Eigen) hqr2(h *Dense) {
	n := eig.n
	d := eig.d
	e := eig.e
	v := eig.v

	nn := n
	low, high := 0, n-1
	eps := math.Pow(2, -52)
	var exshift float64
	var p, q, r, s, z, w, x, y float64

	var norm float64
	for i := 0; i < nn; i++ {
		if i < low || i > high {
			d[i] = h.at(i, i)
			e[i] = 0
		}
		for j := max(i-1, 0); j < nn; j++ {
			norm += math.Abs(h.at(i, j))
		}
	}

	iter := 0
	n2 := high
	for n2 >= low {
		l := n2
		for l > low {
			s = math.Abs(h.at(l-1, l-1)) + math.Abs(h.at(l, l))
			if s == 0 {
				s = norm
			}
			if math.Abs(h.at(l, l-1)) < eps*s {
				break
			}
			l--
		}

		if l == n2 {
			h.Set(n2, n2, h.at(n2, n2)+exshift)
			d[n2] = h.at(n2, n2)
			e[n2] = 0
			n2--
			iter = 0
		} else if l == n2-1 {
			w = h.at(n2, n2-1) * h.at(n2-1, n2)
			p = (h.at(n2-1, n2-1) - h.at(n2, n2)) / 2
			q = p*p + w
			z = math.Sqrt(math.Abs(q))
			h.Set(n2, n2, h.at(n2, n2)+exshift)
			h.Set(n2-1, n2-1, h.at(n2-1, n2-1)+exshift)
			x = h.at(n2, n2)

			if q >= 0 {
				if p >= 0 {
					z = p + z
				} else {
					z = p - z
				}
				d[n2-1] = x + z
				d[n2] = d[n2-1]
				if z != 0 {
					d[n2] = x - w/z
				}
				e[n2-1] = 0
				e[n2] = 0
				x = h.at(n2, n2-1)
				s = math.Abs(x) + math.Abs(z)
				p = x / s
				q = z / s
				r = math.Sqrt(p*p + q*q)
				p /= r
				q /= r
				for j := n2 - 1; j < nn; j++ {
					z = h.at(n2-1, j)
					h.Set(n2-1, j, q*z+p*h.at(n2, j))
					h.Set(n2, j, q*h.at(n2, j)-p*z)
				}
				for i := 0; i <= n2; i++ {
					z = h.at(i, n2-1)
					h.Set(i, n2-1, q*z+p*h.at(i, n2))
					h.Set(i, n2, q*h.at(i, n2)-p*z)
				}
				for i := low; i <= high; i++ {
					z = v.at(i, n2-1)
					v.Set(i, n2-1, q*z+p*v.at(i, n2))
					v.Set(i, n2, q*v.at(i, n2)-p*z)
				}
			} else {
				d[n2-1] = x + p
				d[n2] = x + p
				e[n2-1] = z
				e[n2] = -z
			}
			n2 -= 2
			iter = 0
		} else {
			x = h.at(n2, n2)
			y = 0.0
			w = 0.0
			if l < n2 {
				y = h.at(n2-1, n2-1)
				w = h.at(n2, n2-1) * h.at(n2-1, n2)
			}

			if iter == 10 {
				exshift += x
				for i := low; i <= n2; i++ {
					h.Set(i, i, h.at(i, i)-x)
				}
				s = math.Abs(h.at(n2, n2-1)) + math.Abs(h.at(n2-1, n2-2))
				x = 0.75 * s
				y = x
				w = -0.4375 * s * s
			}
			if iter == 30 {
				s = (y - x) / 2
				s = s*s + w
				if s > 0 {
					s = math.Sqrt(s)
					if y < x {
						s = -s
					}
					s = x - w/((y-x)/2+s)
					for i := low; i <= n2; i++ {
						h.Set(i, i, h.at(i, i)-s)
					}
					exshift += s
					x, y, w = 0.964, 0.964, 0.964
				}
			}

			iter++

			m := n2 - 2
			for m >= l {
				z = h.at(m, m)
				r = x - z
				s = y - z
				p = (r*s-w)/h.at(m+1, m) + h.at(m, m+1)
				q = h.at(m+1, m+1) - z - r - s
				r = h.at(m+2, m+1)
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if m == l {
					break
				}
				if math.Abs(h.at(m, m-1))*(math.Abs(q)+math.Abs(r)) <
					eps*(math.Abs(p)*(math.Abs(h.at(m-1, m-1))+math.Abs(z)+math.Abs(h.at(m+1, m+1)))) {
					break
				}
				m--
			}

			for i := m + 2; i <= n2; i++ {
				h.Set(i, i-2, 0)
				if i > m+2 {
					h.Set(i, i-3, 0)
				}
			}

			for k := m; k <= n2-1; k++ {
				notlast := k != n2-1
				if k != m {
					p = h.at(k, k-1)
					q = h.at(k+1, k-1)
					r = 0.0
					if notlast {
						r = h.at(k+2, k-1)
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x != 0 {
						p /= x
						q /= x
						r /= x
					}
				}
				if x == 0 {
					break
				}
				s = math.Sqrt(p*p + q*q + r*r)
				if p < 0 {
					s = -s
				}
				if s != 0 {
					if k != m {
						h.Set(k, k-1, -s*x)
					} else if l != m {
						h.Set(k, k-1, -h.at(k, k-1))
					}
					p += s
					x = p / s
					y = q / s
					z = r / s
					q /= p
					r /= p

					for j := k; j < nn; j++ {
						p = h.at(k, j) + q*h.at(k+1, j)
						if notlast {
							p += r * h.at(k+2, j)
							h.Set(k+2, j, h.at(k+2, j)-p*z)
						}
						h.Set(k, j, h.at(k, j)-p*x)
						h.Set(k+1, j, h.at(k+1, j)-p*y)
					}

					lim := min(n2, k+3)
					for i := 0; i <= lim; i++ {
						p = x*h.at(i, k) + y*h.at(i, k+1)
						if notlast {
							p += z * h.at(i, k+2)
							h.Set(i, k+2, h.at(i, k+2)-p*r)
						}
						h.Set(i, k, h.at(i, k)-p)
						h.Set(i, k+1, h.at(i, k+1)-p*q)
					}

					for i := low; i <= high; i++ {
						p = x*v.at(i, k) + y*v.at(i, k+1)
						if notlast {
							p += z * v.at(i, k+2)
							v.Set(i, k+2, v.at(i, k+2)-p*r)
						}
						v.Set(i, k, v.at(i, k)-p)
						v.Set(i, k+1, v.at(i, k+1)-p*q)
					}
				}
			}
		}
	}

	if norm == 0 {
		return
	}
	for n2 = nn - 1; n2 >= 0; n2-- {
		p = d[n2]
		q = e[n2]
		if q == 0 {
			l := n2
			h.Set(n2, n2, 1)
			for i := n2 - 1; i >= 0; i-- {
				w = h.at(i, i) - p
				r = 0
				for j := l; j <= n2; j++ {
					r += h.at(i, j) * h.at(j, n2)
				}
				if e[i] < 0 {
					z = w
					s = r
				} else {
					l = i
					if e[i] == 0 {
						if w != 0 {
							h.Set(i, n2, -r/w)
						} else {
							h.Set(i, n2, -r/(eps*norm))
						}
					} else {
						x = h.at(i, i+1)
						y = h.at(i+1, i)
						q = (d[i]-p)*(d[i]-p) + e[i]*e[i]
						t := (x*s - z*r) / q
						h.Set(i, n2, t)
						if math.Abs(x) > math.Abs(z) {
							h.Set(i+1, n2, (-r-w*t)/x)
						} else {
							h.Set(i+1, n2, (-s-y*t)/z)
						}
					}
					t := math.Abs(h.at(i, n2))
					if eps*t*t > 1 {
						for j := i; j <= n2; j++ {
							h.Set(j, n2, h.at(j, n2)/t)
						}
					}
				}
			}
		} else if q < 0 {
			l := n2 - 1
			if math.Abs(h.at(n2, n2-1)) > math.Abs(h.at(n2-1, n2)) {
				h.Set(n2-1, n2-1, q/h.at(n2, n2-1))
				h.Set(n2-1, n2, -(h.at(n2, n2)-p)/h.at(n2, n2-1))
			} else {
				cdivr, cdivi := cdiv(0, -h.at(n2-1, n2), h.at(n2-1, n2-1)-p, q)
				h.Set(n2-1, n2-1, cdivr)
				h.Set(n2-1, n2, cdivi)
			}
			h.Set(n2, n2-1, 0)
			h.Set(n2, n2, 1)
			for i := n2 - 2; i >= 0; i-- {
				var ra, sa float64
				for j := l; j <= n2; j++ {
					ra += h.at(i, j) * h.at(j, n2-1)
					sa += h.at(i, j) * h.at(j, n2)
				}
				w = h.at(i, i) - p
				if e[i] < 0 {
					z = w
					r = ra
					s = sa
				} else {
					l = i
					if e[i] == 0 {
						cdivr, cdivi := cdiv(-ra, -sa, w, q)
						h.Set(i, n2-1, cdivr)
						h.Set(i, n2, cdivi)
					} else {
						x = h.at(i, i+1)
						y = h.at(i+1, i)
						vr := (d[i]-p)*(d[i]-p) + e[i]*e[i] - q*q
						vi := (d[i] - p) * 2 * q
						if vr == 0 && vi == 0 {
							vr = eps * norm * (math.Abs(w) + math.Abs(q) + math.Abs(x) + math.Abs(y) + math.Abs(z))
						}
						cdivr, cdivi := cdiv(x*r-z*ra+q*sa, x*s-z*sa-q*ra, vr, vi)
						h.Set(i, n2-1, cdivr)
						h.Set(i, n2, cdivi)
						if math.Abs(x) > math.Abs(z)+math.Abs(q) {
							h.Set(i+1, n2-1, (-ra-w*h.at(i, n2-1)+q*h.at(i, n2))/x)
							h.Set(i+1, n2, (-sa-w*h.at(i, n2)-q*h.at(i, n2-1))/x)
						} else {
							cdivr, cdivi = cdiv(-r-y*h.at(i, n2-1), -s-y*h.at(i, n2), z, q)
							h.Set(i+1, n2-1, cdivr)
							h.Set(i+1, n2, cdivi)
						}
					}
					t := math.Max(math.Abs(h.at(i, n2-1)), math.Abs(h.at(i, n2)))
					if eps*t*t > 1 {
						for j := i; j <= n2; j++ {
							h.Set(j, n2-1, h.at(j, n2-1)/t)
							h.Set(j, n2, h.at(j, n2)/t)
						}
					}
				}
			}
		}
	}

	for i := 0; i < nn; i++ {
		if i < low || i > high {
			for j := i; j < nn; j++ {
				v.Set(i, j, h.at(i, j))
			}
		}
	}

	for j := nn - 1; j >= low; j-- {
		for i := low; i <= high; i++ {
			z = 0
			for k := low; k <= min(j, high); k++ {
				z += v.at(i, k) * h.at(k, j)
			}
			v.Set(i, j, z)
		}
	}
}

// cdiv computes the complex quotient (xr+xi·i)/(yr+yi·i), returning its
// real and imaginary parts.
func cdiv(xr, xi, yr, yi float64) (float64, float64) {
	if math.Abs(yr) > math.Abs(yi) {
		r := yi / yr
		d := yr + r*yi
		return (xr + r*xi) / d, (xi - r*xr) / d
	}
	r := yr / yi
	d := yi + r*yr
	return (r*xr + xi) / d, (r*xi - xr) / d
}
