// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "fmt"

// ErrorKind identifies the class of a mat.Error.
type ErrorKind int

// The error kinds exposed at the package boundary. A Solve or a parse
// failure always carries one of these; shape and argument errors raised
// elsewhere in the package do too.
const (
	ShapeMismatch ErrorKind = iota
	Singular
	RankDeficient
	ParseError
	RaggedInput
	IoError
)

// String returns the name of the error kind. Written by hand in the shape a
// stringer-generated method would take; there is no go:generate step here
// because this package ships no other generated code.
func (k ErrorKind) String() string {
	switch k {
	case ShapeMismatch:
		return "ShapeMismatch"
	case Singular:
		return "Singular"
	case RankDeficient:
		return "RankDeficient"
	case ParseError:
		return "ParseError"
	case RaggedInput:
		return "RaggedInput"
	case IoError:
		return "IoError"
	default:
		return "ErrorKind(unknown)"
	}
}

// Error is the error type returned or panicked by this package. Shape and
// argument errors are panicked; Singular and RankDeficient are panicked from
// the Solve methods (Maybe recovers them as an error) and returned as an
// error by LU.Inverse; ParseError, RaggedInput and IoError are returned from
// the parser and CSV boundary, carrying position context via Offset.
type Error struct {
	Kind    ErrorKind
	Message string
	// Offset is the position of the failure: for Parse's ParseError and
	// RaggedInput, the byte offset within the source text; for LoadCSV's
	// RaggedInput, the zero-based index of the offending row among the
	// input's non-empty lines. It is -1 when not applicable.
	Offset int
}

func (e Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("mat: %s: %s (offset %d)", e.Kind, e.Message, e.Offset)
	}
	return fmt.Sprintf("mat: %s: %s", e.Kind, e.Message)
}

func newError(kind ErrorKind, msg string) Error {
	return Error{Kind: kind, Message: msg, Offset: -1}
}

func newErrorAt(kind ErrorKind, msg string, offset int) Error {
	return Error{Kind: kind, Message: msg, Offset: offset}
}

var (
	errShape           = newError(ShapeMismatch, "dimension mismatch")
	errSquare          = newError(ShapeMismatch, "expect square matrix")
	errIndexOutOfRange = newError(ShapeMismatch, "index out of range")
	errZeroLength      = newError(ShapeMismatch, "zero length in matrix definition")
	errNegativeDim     = newError(ShapeMismatch, "negative dimension")
)

// Panicker is a function that may panic with a mat.Error.
type Panicker func()

// Maybe recovers a panic of type mat.Error from fn and returns it as an
// error. Any other panic value is re-raised.
func Maybe(fn Panicker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// FloatPanicker is a function that returns a float64 and may panic with a
// mat.Error.
type FloatPanicker func() float64

// MaybeFloat recovers a panic of type mat.Error from fn and returns it as an
// error alongside the zero value. Any other panic value is re-raised.
func MaybeFloat(fn FloatPanicker) (f float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	return fn(), nil
}

// Must panics if err is non-nil. It is the mirror of Maybe.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Diagnostics is the minimal collaborator this package consumes to report
// non-fatal conditions: a singular matrix kept after factorization, a
// mixed-delimiter parse falling back to its first delimiter, a long CSV row
// accepted with coercion. The logging/severity subsystem that implements it
// is out of scope for this package; see package diag for the default
// implementation.
type Diagnostics interface {
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// nopDiagnostics discards everything. It is the default when no Diagnostics
// is supplied, so the package never requires a collaborator to function.
type nopDiagnostics struct{}

func (nopDiagnostics) Warnf(string, ...interface{})  {}
func (nopDiagnostics) Errorf(string, ...interface{}) {}

// defaultDiag is the package-level fallback collaborator. SetDiagnostics
// replaces it; it is nil-safe (nopDiagnostics) until then.
var defaultDiag Diagnostics = nopDiagnostics{}

// SetDiagnostics installs the Diagnostics collaborator used by operations
// that do not take one explicitly (the decomposition constructors). Passing
// nil restores the no-op default.
func SetDiagnostics(d Diagnostics) {
	if d == nil {
		defaultDiag = nopDiagnostics{}
		return
	}
	defaultDiag = d
}
