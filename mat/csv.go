// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// LoadCSV reads a matrix from r in delimited text form, one row per line.
// The delimiter is auto-detected from the first non-empty line (',', ';',
// '\t', in that preference order, falling back to whitespace). If
// transpose is true, the loaded matrix is transposed before it is
// returned. A first line in which no field parses as a number is a header
// line and is skipped.
//
// A field that does not parse as a float64 is coerced to NaN, with a
// warning reported to the active Diagnostics collaborator rather than
// failing the load. A row with more fields than the first row is
// truncated, with a warning; a row with fewer fields is a RaggedInput
// error, since there is no sound way to guess which columns are missing.
//
// Grounded on the reader/writer error-boundary shape of gonum's mat64 I/O
// support, extended with the delimiter sniffing and lenient coercion this
// package's CSV boundary calls for.
func LoadCSV(r io.Reader, transpose bool) (*Dense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newError(IoError, err.Error())
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return NewDense(0, 0), nil
	}

	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return NewDense(0, 0), nil
	}

	sep := detectSeparator(lines[0])
	header := true
	isSep := func(r rune) bool { return r == rune(sep) || (sep == 0 && (r == ' ' || r == '\t')) }
	for _, f := range strings.FieldsFunc(lines[0], isSep) {
		if _, perr := strconv.ParseFloat(strings.TrimSpace(f), 64); perr == nil {
			header = false
			break
		}
	}
	if header {
		lines = lines[1:]
	}
	width := -1
	rows := make([][]float64, 0, len(lines))
	for i, line := range lines {
		var fields []string
		if sep == 0 {
			fields = strings.Fields(line)
		} else {
			fields = strings.Split(line, string(sep))
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			f = strings.TrimSpace(f)
			v, perr := strconv.ParseFloat(f, 64)
			if perr != nil {
				defaultDiag.Warnf("mat: csv: row %d col %d: %q is not a number, coercing to NaN", i, j, f)
				v = math.NaN()
			}
			row[j] = v
		}
		switch {
		case width == -1:
			width = len(row)
		case len(row) > width:
			defaultDiag.Warnf("mat: csv: row %d has %d fields, expected %d; truncating", i, len(row), width)
			row = row[:width]
		case len(row) < width:
			return nil, newErrorAt(RaggedInput, "row has fewer fields than the matrix's established width", i)
		}
		rows = append(rows, row)
	}

	m := NewDenseFromTable(rows)
	if transpose {
		return m.T(), nil
	}
	return m, nil
}

func detectSeparator(line string) byte {
	switch {
	case strings.ContainsRune(line, ','):
		return ','
	case strings.ContainsRune(line, ';'):
		return ';'
	case strings.ContainsRune(line, '\t'):
		return '\t'
	default:
		return 0
	}
}

// SaveCSV writes m to w as comma-separated text, one row per line.
func SaveCSV(w io.Writer, m *Dense) error {
	r, c := m.Dims()
	var b strings.Builder
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(m.at(i, j), 'g', -1, 64))
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return newError(IoError, err.Error())
	}
	return nil
}
