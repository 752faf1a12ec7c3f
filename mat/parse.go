// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"strconv"
	"strings"
)

// Parse parses a matrix from its bracketed text literal form,
// "[a b c; d e f]", returning a 2×3 matrix. Rows are separated by ';' or a
// newline; elements within a row are separated by whitespace or ','. The
// field separator is auto-detected once for the whole matrix, from whether
// its first row contains a ','; a later row using the other separator is
// mixing, and is reported as a warning to the active Diagnostics
// collaborator (see SetDiagnostics) and then split with the matrix-wide
// separator; a resulting field that is not a number is a ParseError.
//
// Parse returns a ParseError (with Offset set to the byte offset of the
// failure) if the literal is malformed, and a RaggedInput error if rows
// have unequal element counts.
func Parse(text string) (*Dense, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return nil, newErrorAt(ParseError, "matrix literal must be enclosed in [ ]", offsetOf(text, trimmed))
	}
	body := trimmed[1 : len(trimmed)-1]

	var trimmedRows []string
	for _, raw := range splitRows(body) {
		raw = strings.TrimSpace(raw)
		if raw != "" {
			trimmedRows = append(trimmedRows, raw)
		}
	}
	if len(trimmedRows) == 0 {
		return NewDense(0, 0), nil
	}
	useComma := strings.Contains(trimmedRows[0], ",")

	rows := make([][]float64, 0, len(trimmedRows))
	width := -1
	for ri, raw := range trimmedRows {
		if mixesSeparators(raw, useComma) {
			defaultDiag.Warnf("mat: parse: row %d mixes separators, falling back to the matrix's first row's separator", ri)
		}
		fields := splitFields(raw, useComma)
		row := make([]float64, 0, len(fields))
		for _, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, newErrorAt(ParseError, "invalid number "+strconv.Quote(f)+" in row "+strconv.Itoa(ri), offsetOf(text, f))
			}
			row = append(row, v)
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, newErrorAt(RaggedInput, "row has a different element count than preceding rows", offsetOf(text, raw))
		}
		rows = append(rows, row)
	}
	return NewDenseFromTable(rows), nil
}

// offsetOf returns the byte offset of needle's first rune within text, or
// -1 if it cannot be found. Parse always derives needle as a substring of
// text.
func offsetOf(text, needle string) int {
	if needle == "" {
		return -1
	}
	i := strings.Index(text, needle)
	return i
}

func splitRows(body string) []string {
	var rows []string
	var cur strings.Builder
	for _, r := range body {
		switch r {
		case ';', '\n':
			rows = append(rows, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		rows = append(rows, cur.String())
	}
	return rows
}

// mixesSeparators reports whether row uses a different field separator than
// the matrix-wide choice useComma: a comma-separated matrix seeing a
// whitespace-only row, or vice versa.
func mixesSeparators(row string, useComma bool) bool {
	hasComma := strings.Contains(row, ",")
	if useComma {
		return !hasComma && strings.ContainsAny(row, " \t")
	}
	return hasComma
}

// splitFields splits row on the matrix-wide separator useComma selected.
func splitFields(row string, useComma bool) []string {
	if useComma {
		return strings.Split(row, ",")
	}
	return strings.Fields(row)
}

// String returns m's bracketed text literal form, the same grammar Parse
// accepts, with rows separated by "; " and elements by a single space.
func (m *Dense) String() string {
	r, c := m.Dims()
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < r; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		row := m.rowView(i)
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		_ = c
	}
	b.WriteByte(']')
	return b.String()
}
