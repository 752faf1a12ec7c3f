// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "math"

// TinyTolerance is added to scalar divisors to avoid exact division by
// zero. SetTinyTolerance overrides it process-wide.
var TinyTolerance = 1e-300

// SetTinyTolerance overrides TinyTolerance. t <= 0 restores the built-in
// default.
func SetTinyTolerance(t float64) {
	if t <= 0 {
		t = 1e-300
	}
	TinyTolerance = t
}

// broadcastShape resolves the output shape of a binary operation between a
// and b under the broadcasting rules: equal shapes match as-is; a 1×1
// scalar broadcasts against any shape; a 1×n row vector broadcasts against
// an m×n matrix along rows; an m×1 column vector broadcasts against an m×n
// matrix along columns. Any other combination is a ShapeMismatch.
func broadcastShape(a, b Dims) (Dims, bool) {
	if a == b {
		return a, true
	}
	if a.Rows == 1 && a.Cols == 1 {
		return b, true
	}
	if b.Rows == 1 && b.Cols == 1 {
		return a, true
	}
	if a.Rows == 1 && a.Cols == b.Cols {
		return b, true
	}
	if b.Rows == 1 && b.Cols == a.Cols {
		return a, true
	}
	if a.Cols == 1 && a.Rows == b.Rows {
		return b, true
	}
	if b.Cols == 1 && b.Rows == a.Rows {
		return a, true
	}
	return Dims{}, false
}

func broadcastAt(m *Dense, d Dims, i, j int) float64 {
	r, c := m.Dims()
	if r == d.Rows && c == d.Cols {
		return m.at(i, j)
	}
	if r == 1 && c == 1 {
		return m.at(0, 0)
	}
	if r == 1 {
		return m.at(0, j)
	}
	if c == 1 {
		return m.at(i, 0)
	}
	panic(errShape)
}

// elemBinary computes f element-wise over the broadcast of a and b and
// writes the r×c result into dst, which must already be shaped for it.
func elemBinary(dst, a, b *Dense, f func(x, y float64) float64) {
	ad := Dims{a.mat.Rows, a.mat.Cols}
	bd := Dims{b.mat.Rows, b.mat.Cols}
	d, ok := broadcastShape(ad, bd)
	if !ok {
		panic(errShape)
	}
	dr, dc := dst.Dims()
	if dr != d.Rows || dc != d.Cols {
		panic(errShape)
	}
	for i := 0; i < d.Rows; i++ {
		for j := 0; j < d.Cols; j++ {
			dst.Set(i, j, f(broadcastAt(a, d, i, j), broadcastAt(b, d, i, j)))
		}
	}
}

func pureBinary(a, b *Dense, f func(x, y float64) float64) *Dense {
	ad := Dims{a.mat.Rows, a.mat.Cols}
	bd := Dims{b.mat.Rows, b.mat.Cols}
	d, ok := broadcastShape(ad, bd)
	if !ok {
		panic(errShape)
	}
	out := NewDense(d.Rows, d.Cols)
	elemBinary(out, a, b, f)
	return out
}

// inPlaceBinary applies f element-wise over the broadcast of m and b,
// mutating m in place. m must already have the shape the broadcast
// resolves to (this is always the case when b broadcasts onto m, which is
// the common in-place usage; it panics otherwise).
func inPlaceBinary(m, b *Dense, f func(x, y float64) float64) *Dense {
	elemBinary(m, m, b, f)
	return m
}

// Plus returns a new matrix holding m+b (broadcasting as described in
// broadcastShape).
func (m *Dense) Plus(b *Dense) *Dense { return pureBinary(m, b, func(x, y float64) float64 { return x + y }) }

// Add adds b into m in place and returns m.
func (m *Dense) Add(b *Dense) *Dense { return inPlaceBinary(m, b, func(x, y float64) float64 { return x + y }) }

// Minus returns a new matrix holding m-b.
func (m *Dense) Minus(b *Dense) *Dense { return pureBinary(m, b, func(x, y float64) float64 { return x - y }) }

// Subtract subtracts b from m in place and returns m.
func (m *Dense) Subtract(b *Dense) *Dense {
	return inPlaceBinary(m, b, func(x, y float64) float64 { return x - y })
}

// ArrayTimes returns a new matrix holding the Hadamard (element-wise)
// product of m and b.
func (m *Dense) ArrayTimes(b *Dense) *Dense {
	return pureBinary(m, b, func(x, y float64) float64 { return x * y })
}

// Multiply multiplies m by b element-wise in place (Hadamard product) and
// returns m.
func (m *Dense) Multiply(b *Dense) *Dense {
	return inPlaceBinary(m, b, func(x, y float64) float64 { return x * y })
}

// Division returns a new matrix holding m divided by b. Division by a
// non-scalar matrix divides by its inverse (A / B == A * B⁻¹); division by
// a scalar uses TinyTolerance to avoid an exact division by zero.
func (m *Dense) Division(b *Dense) *Dense {
	if b.IsScalar() {
		v := b.ToScalar()
		return pureBinary(m, b, func(x, _ float64) float64 { return x / (v + tinySignedOffset(v)) })
	}
	inv, err := (&LU{}).Factorize(b).Inverse()
	if err != nil {
		panic(newError(Singular, "division by singular matrix"))
	}
	r, c := m.Dims()
	out := NewDense(r, c)
	out.Copy(m.Times(inv))
	return out
}

// Divide divides m by b in place (see Division) and returns m.
func (m *Dense) Divide(b *Dense) *Dense {
	d := m.Division(b)
	m.Copy(d)
	return m
}

func tinySignedOffset(v float64) float64 {
	if v < 0 {
		return -TinyTolerance
	}
	return TinyTolerance
}

// ArrayPower returns a new matrix holding m raised element-wise to the
// power p.
func (m *Dense) ArrayPower(p float64) *Dense {
	return m.Apply(func(x float64) float64 { return math.Pow(x, p) })
}

// ArrayRaise raises m element-wise to the power p in place and returns m.
func (m *Dense) ArrayRaise(p float64) *Dense {
	for i := 0; i < m.mat.Rows; i++ {
		row := m.rowView(i)
		for j := range row {
			row[j] = math.Pow(row[j], p)
		}
	}
	return m
}

// Scale returns a new matrix holding m scaled by f.
func (m *Dense) Scale(f float64) *Dense {
	return m.Apply(func(x float64) float64 { return f * x })
}

// ScaleInPlace scales m by f in place and returns m.
func (m *Dense) ScaleInPlace(f float64) *Dense {
	for i := 0; i < m.mat.Rows; i++ {
		row := m.rowView(i)
		for j := range row {
			row[j] *= f
		}
	}
	return m
}

// Negate returns a new matrix holding -m.
func (m *Dense) Negate() *Dense { return m.Scale(-1) }

// Copy copies the elements of b into m, in place. m and b must have equal
// shape.
func (m *Dense) Copy(b *Dense) *Dense {
	r, c := m.Dims()
	br, bc := b.Dims()
	if r != br || c != bc {
		panic(errShape)
	}
	for i := 0; i < r; i++ {
		copy(m.rowView(i), b.rowView(i))
	}
	return m
}
