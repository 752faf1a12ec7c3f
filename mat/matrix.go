// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat provides a dense real-valued matrix type, the classical
// matrix decompositions (LU, QR, Cholesky, SVD, symmetric and unsymmetric
// eigendecomposition), a tiled parallel multiplication engine, and the
// text/CSV boundary used to load and save matrices.
//
// Note that in-place operations require the receiver to already have the
// correct dimensions for the result; a zero-value receiver is not grown to
// fit. Otherwise the operation panics with a mat.Error of kind
// ShapeMismatch.
package mat

// Dims is the immutable shape of a matrix, used in broadcast decisions
// (shape errors do not report it). It is also returned as a 1×2 matrix by Dense.Shape,
// for callers that want shape as an algebraic quantity (spec open question:
// size() as a matrix rather than a pair of ints — both are offered here).
type Dims struct {
	Rows, Cols int
}

// RawMatrix is the dense row-major storage backing a Dense: element (i,j)
// lives at Data[i*Stride+j]. Stride equals Cols for matrices owned
// outright; it can exceed Cols for a row/column view into a larger Dense.
type RawMatrix struct {
	Rows, Cols, Stride int
	Data               []float64
}

// Dense is a dense m×n matrix of float64 values stored row-major. A vector
// is a Dense with Rows==1 or Cols==1; Transposed records which of the two
// shapes a value constructed as a vector should present as when reshaped. A
// scalar is a Dense with Rows==Cols==1.
type Dense struct {
	mat        RawMatrix
	Transposed bool
}

// NewDense returns a new r×c zero matrix. NewDense panics if r or c is
// negative.
func NewDense(r, c int) *Dense {
	if r < 0 || c < 0 {
		panic(errNegativeDim)
	}
	return &Dense{mat: RawMatrix{Rows: r, Cols: c, Stride: c, Data: make([]float64, r*c)}}
}

// NewDenseFill returns a new r×c matrix with every element set to v.
func NewDenseFill(r, c int, v float64) *Dense {
	m := NewDense(r, c)
	m.Fill(v)
	return m
}

// NewDenseFromRowMajor returns a new r×c matrix backed by a copy of data,
// interpreted as the row-major concatenation of the matrix's rows.
// NewDenseFromRowMajor panics if len(data) != r*c.
func NewDenseFromRowMajor(r, c int, data []float64) *Dense {
	if r < 0 || c < 0 {
		panic(errNegativeDim)
	}
	if len(data) != r*c {
		panic(errShape)
	}
	cp := make([]float64, r*c)
	copy(cp, data)
	return &Dense{mat: RawMatrix{Rows: r, Cols: c, Stride: c, Data: cp}}
}

// NewDenseFromTable returns a new matrix from a 2-D table of rows.
// NewDenseFromTable panics if the rows do not all have equal length
// (ErrorKind ShapeMismatch — see also ParseError / RaggedInput in the CSV
// and text-literal loaders, which report the same condition at a parse
// boundary instead of panicking).
func NewDenseFromTable(rows [][]float64) *Dense {
	r := len(rows)
	if r == 0 {
		return NewDense(0, 0)
	}
	c := len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		if len(row) != c {
			panic(errShape)
		}
		data = append(data, row...)
	}
	return &Dense{mat: RawMatrix{Rows: r, Cols: c, Stride: c, Data: data}}
}

// NewVector returns a new vector of length n: a row vector (1×n) if
// transposed is false, a column vector (n×1) if transposed is true. If data
// is non-nil it is copied in as the vector's elements; otherwise the vector
// is zero-filled.
func NewVector(n int, data []float64, transposed bool) *Dense {
	if n < 0 {
		panic(errNegativeDim)
	}
	if data != nil && len(data) != n {
		panic(errShape)
	}
	r, c := 1, n
	if transposed {
		r, c = n, 1
	}
	v := NewDense(r, c)
	v.Transposed = transposed
	if data != nil {
		copy(v.mat.Data, data)
	}
	return v
}

// NewScalar returns a new 1×1 matrix holding v.
func NewScalar(v float64) *Dense {
	return &Dense{mat: RawMatrix{Rows: 1, Cols: 1, Stride: 1, Data: []float64{v}}}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	m := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.mat.Data[i*m.mat.Stride+i] = 1
	}
	return m
}

// Dims returns the matrix's row and column counts.
func (m *Dense) Dims() (r, c int) { return m.mat.Rows, m.mat.Cols }

// Shape returns the matrix's dimensions as a 1×2 matrix [rows cols], for
// code that treats size() as an algebraic quantity. Ordinary callers
// should prefer Dims.
func (m *Dense) Shape() *Dense {
	r, c := m.Dims()
	return NewVector(2, []float64{float64(r), float64(c)}, false)
}

// RawMatrix returns the receiver's underlying row-major storage. Changes to
// the returned Data slice are reflected in the original matrix.
func (m *Dense) RawMatrix() RawMatrix { return m.mat }

func (m *Dense) isZero() bool {
	return m.mat.Rows == 0 && m.mat.Cols == 0
}

// reuseAs prepares the receiver to hold an r×c result, allocating storage
// if the receiver is the zero value and panicking with ShapeMismatch
// otherwise if the shape does not already match.
func (m *Dense) reuseAs(r, c int) {
	if m.isZero() {
		m.mat = RawMatrix{Rows: r, Cols: c, Stride: c, Data: use(m.mat.Data, r*c)}
		return
	}
	if m.mat.Rows != r || m.mat.Cols != c {
		panic(errShape)
	}
}

func use(f []float64, n int) []float64 {
	if cap(f) < n {
		return make([]float64, n)
	}
	return f[:n]
}

// IsVector reports whether m is a row vector (Rows==1) or column vector
// (Cols==1). A 1×1 matrix satisfies both this and IsScalar.
func (m *Dense) IsVector() bool {
	return m.mat.Rows == 1 || m.mat.Cols == 1
}

// IsScalar reports whether m is a 1×1 matrix.
func (m *Dense) IsScalar() bool {
	return m.mat.Rows == 1 && m.mat.Cols == 1
}

// ToScalar returns the sole element of a 1×1 matrix. It panics with
// ShapeMismatch otherwise.
func (m *Dense) ToScalar() float64 {
	if !m.IsScalar() {
		panic(errShape)
	}
	return m.mat.Data[0]
}

// ToVector returns a copy of the elements of a row or column vector, in
// order. It panics with ShapeMismatch if m is not a vector.
func (m *Dense) ToVector() []float64 {
	if !m.IsVector() {
		panic(errShape)
	}
	out := make([]float64, len(m.mat.Data))
	if m.mat.Rows == 1 {
		copy(out, m.rowView(0))
		return out
	}
	for i := 0; i < m.mat.Rows; i++ {
		out[i] = m.at(i, 0)
	}
	return out
}

func (m *Dense) checkIndex(i, j int) {
	if i < 0 || i >= m.mat.Rows || j < 0 || j >= m.mat.Cols {
		panic(errIndexOutOfRange)
	}
}

// At returns the value at (i,j). At panics if i or j are out of bounds.
func (m *Dense) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.at(i, j)
}

func (m *Dense) at(i, j int) float64 { return m.mat.Data[i*m.mat.Stride+j] }

// Set sets the value at (i,j) to v. Set panics if i or j are out of bounds.
func (m *Dense) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.mat.Data[i*m.mat.Stride+j] = v
}

func (m *Dense) rowView(i int) []float64 {
	return m.mat.Data[i*m.mat.Stride : i*m.mat.Stride+m.mat.Cols]
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.mat.Rows {
		panic(errIndexOutOfRange)
	}
	out := make([]float64, m.mat.Cols)
	copy(out, m.rowView(i))
	return out
}

// SetRow sets row i to the values in v. SetRow panics if len(v) != Cols.
func (m *Dense) SetRow(i int, v []float64) {
	if i < 0 || i >= m.mat.Rows {
		panic(errIndexOutOfRange)
	}
	if len(v) != m.mat.Cols {
		panic(errShape)
	}
	copy(m.rowView(i), v)
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) []float64 {
	if j < 0 || j >= m.mat.Cols {
		panic(errIndexOutOfRange)
	}
	out := make([]float64, m.mat.Rows)
	for i := range out {
		out[i] = m.at(i, j)
	}
	return out
}

// SetCol sets column j to the values in v. SetCol panics if len(v) != Rows.
func (m *Dense) SetCol(j int, v []float64) {
	if j < 0 || j >= m.mat.Cols {
		panic(errIndexOutOfRange)
	}
	if len(v) != m.mat.Rows {
		panic(errShape)
	}
	for i, x := range v {
		m.mat.Data[i*m.mat.Stride+j] = x
	}
}

// Fill sets every element of m to v, mutating the receiver in place.
func (m *Dense) Fill(v float64) *Dense {
	for i := 0; i < m.mat.Rows; i++ {
		row := m.rowView(i)
		for j := range row {
			row[j] = v
		}
	}
	return m
}

// Clone returns a deep copy of m: mutating the result never affects m, and
// vice versa.
func (m *Dense) Clone() *Dense {
	r, c := m.Dims()
	out := NewDense(r, c)
	out.Transposed = m.Transposed
	for i := 0; i < r; i++ {
		copy(out.rowView(i), m.rowView(i))
	}
	return out
}

// Submatrix copies the r×c block starting at (i,j) into a new matrix.
func (m *Dense) Submatrix(i, j, r, c int) *Dense {
	if i < 0 || j < 0 || r < 0 || c < 0 || i+r > m.mat.Rows || j+c > m.mat.Cols {
		panic(errIndexOutOfRange)
	}
	out := NewDense(r, c)
	for k := 0; k < r; k++ {
		copy(out.rowView(k), m.mat.Data[(i+k)*m.mat.Stride+j:(i+k)*m.mat.Stride+j+c])
	}
	return out
}

// SubmatrixIndices copies the block selected by the given row and column
// index sets, in the order given, into a new matrix.
func (m *Dense) SubmatrixIndices(rows, cols []int) *Dense {
	out := NewDense(len(rows), len(cols))
	for a, i := range rows {
		for b, j := range cols {
			out.Set(a, b, m.At(i, j))
		}
	}
	return out
}

// SetSubmatrix writes src into the receiver starting at (i,j).
func (m *Dense) SetSubmatrix(i, j int, src *Dense) {
	r, c := src.Dims()
	if i < 0 || j < 0 || i+r > m.mat.Rows || j+c > m.mat.Cols {
		panic(errIndexOutOfRange)
	}
	for k := 0; k < r; k++ {
		copy(m.mat.Data[(i+k)*m.mat.Stride+j:(i+k)*m.mat.Stride+j+c], src.rowView(k))
	}
}

// T returns a new matrix holding the transpose of m.
func (m *Dense) T() *Dense {
	r, c := m.Dims()
	out := NewDense(c, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, m.at(i, j))
		}
	}
	return out
}

// Trace returns the sum of the diagonal elements of m. Trace panics if m is
// not square.
func (m *Dense) Trace() float64 {
	r, c := m.Dims()
	if r != c {
		panic(errSquare)
	}
	var t float64
	for i := 0; i < r; i++ {
		t += m.at(i, i)
	}
	return t
}

// Equal reports whether m and b have the same shape and are element-wise
// exactly equal.
func (m *Dense) Equal(b *Dense) bool {
	r, c := m.Dims()
	br, bc := b.Dims()
	if r != br || c != bc {
		return false
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.at(i, j) != b.at(i, j) {
				return false
			}
		}
	}
	return true
}

// EqualApprox reports whether m and b have the same shape and are
// element-wise equal within the absolute tolerance epsilon.
func (m *Dense) EqualApprox(b *Dense, epsilon float64) bool {
	r, c := m.Dims()
	br, bc := b.Dims()
	if r != br || c != bc {
		return false
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d := m.at(i, j) - b.at(i, j)
			if d < 0 {
				d = -d
			}
			if d > epsilon {
				return false
			}
		}
	}
	return true
}

// DefaultEqualTolerance is the tolerance callers pass to EqualApprox when
// they have no tolerance of their own in mind. SetDefaultEqualTolerance
// overrides it process-wide.
var DefaultEqualTolerance = 1e-10

// SetDefaultEqualTolerance overrides DefaultEqualTolerance. t <= 0 restores
// the built-in default.
func SetDefaultEqualTolerance(t float64) {
	if t <= 0 {
		t = 1e-10
	}
	DefaultEqualTolerance = t
}
