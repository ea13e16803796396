// SPDX-License-Identifier: MIT
// Package datamatrix: fluent builder configuration and terminals.
//
// Builder is an immutable configuration VALUE: every setter takes the
// receiver by value and returns the modified copy, so a partially configured
// builder can be branched into several finished configurations without any
// shared mutable state. The two terminals, FromFile and FromData, perform no
// caching and have no side effects beyond reading the input — the same bytes
// and the same configuration always produce the same matrix.
//
// Defaults mirror the common three-column layout: row labels in column 0,
// column labels in column 1, values in column 2, separator inferred from the
// file extension, no header, not symmetric.

package datamatrix

import (
	"fmt"
	"math"
)

// columnUnset marks an optional column selector as disabled.
const columnUnset = -1

// panic message for builder setter misuse (programmer error, not input error).
const panicNegativeColumn = "datamatrix: column indexes must be non-negative"

// Builder selects how an input source maps onto a DataMatrix.
// The zero value is NOT ready for use; start from NewBuilder.
type Builder struct {
	rowLabelCol int      // 0-based column holding row labels
	colLabelCol int      // 0-based column holding column labels
	dataCol     int      // 0-based column holding the numeric value
	rowIdxCol   int      // explicit row index column; columnUnset to disable
	colIdxCol   int      // explicit column index column; columnUnset to disable
	separator   rune     // 0 means "infer from the file extension"
	symmetric   bool     // mirror (row,col,value) into (col,row)
	skipHeader  bool     // drop the first surviving line
	strict      bool     // fail on conflicting explicit index re-assignment
	labels      []string // non-nil activates single-column mode
}

// NewBuilder returns a builder with the documented defaults.
func NewBuilder() Builder {
	return Builder{
		rowLabelCol: 0,
		colLabelCol: 1,
		dataCol:     2,
		rowIdxCol:   columnUnset,
		colIdxCol:   columnUnset,
	}
}

// LabelColumns selects the 0-based columns holding row and column labels.
// Panics on negative indexes (programmer error).
func (b Builder) LabelColumns(row, col int) Builder {
	if row < 0 || col < 0 {
		panic(panicNegativeColumn)
	}
	b.rowLabelCol, b.colLabelCol = row, col

	return b
}

// DataColumn selects the 0-based column holding the numeric value.
func (b Builder) DataColumn(col int) Builder {
	if col < 0 {
		panic(panicNegativeColumn)
	}
	b.dataCol = col

	return b
}

// IndexColumns selects the 0-based columns holding explicit row and column
// indices, switching FromFile to the five-column format.
func (b Builder) IndexColumns(rowIdx, colIdx int) Builder {
	if rowIdx < 0 || colIdx < 0 {
		panic(panicNegativeColumn)
	}
	b.rowIdxCol, b.colIdxCol = rowIdx, colIdx

	return b
}

// Separator fixes the field separator. The space character means "split on
// any whitespace run"; any other rune splits exactly, preserving empty
// fields. When never called, the separator is inferred from the file name.
func (b Builder) Separator(sep rune) Builder {
	b.separator = sep

	return b
}

// SkipHeader controls whether the first surviving (non-comment, non-blank)
// line is dropped before parsing. Default: false.
func (b Builder) SkipHeader(skip bool) Builder {
	b.skipHeader = skip

	return b
}

// Symmetric controls mirroring: when set, a parsed (row, col, value) entry is
// written to both cells and both labels share one index space, so the result
// is square. A later line naming the mirrored cell explicitly overwrites it —
// last write wins, no conflict detection. Default: false.
func (b Builder) Symmetric(symmetric bool) Builder {
	b.symmetric = symmetric

	return b
}

// Labels supplies the label list for single-column input and switches
// FromFile to that format (one value per line, whitespace-split, filled
// row-major into a len(labels)×len(labels) matrix). The slice is copied, so
// the caller may keep mutating its own.
// FromData also uses these labels for both axes when present.
func (b Builder) Labels(labels []string) Builder {
	b.labels = append([]string(nil), labels...)

	return b
}

// StrictIndices enables conflict detection for the five-column format: a
// line that re-assigns a known label to a different explicit index fails the
// build with ErrConflictingIndex instead of being silently ignored.
// Default: false (first assignment wins).
func (b Builder) StrictIndices(strict bool) Builder {
	b.strict = strict

	return b
}

// FromFile loads a DataMatrix from path according to the configuration.
// Dispatch:
//   - Labels set → single-column format;
//   - IndexColumns set → five-column format (explicit indices);
//   - otherwise → three-column format (first-seen label order).
//
// Separator inference (when none is configured) runs here, once per call.
func (b Builder) FromFile(path string) (*DataMatrix, error) {
	if b.labels != nil {
		return b.readSingleColumn(path)
	}

	sep := b.separator
	if sep == 0 {
		sep = inferSeparator(path)
	}

	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	lines, err := parseLines(src, sep, b.skipHeader)
	if err != nil {
		return nil, err
	}

	if b.rowIdxCol != columnUnset && b.colIdxCol != columnUnset {
		return b.buildQuintuple(lines)
	}

	return b.buildTriplet(lines)
}

// FromData turns a flat value sequence into a square DataMatrix, filling
// row-major. The length must be a perfect square, else ErrWrongNumberOfData.
// Labels come from Labels() when supplied (and must then match the side
// length), otherwise they are generated as "row-1".."row-n" / "col-1".."col-n".
func (b Builder) FromData(data []float64) (*DataMatrix, error) {
	n := int(math.Sqrt(float64(len(data))))
	for n*n < len(data) { // guard against float truncation
		n++
	}
	if n*n != len(data) {
		return nil, fmt.Errorf("%d values cannot fill a square matrix: %w",
			len(data), ErrWrongNumberOfData)
	}

	var rowLabels, colLabels []string
	if b.labels != nil {
		rowLabels = append([]string(nil), b.labels...)
		colLabels = append([]string(nil), b.labels...)
	} else {
		rowLabels = generatedLabels("row-", n)
		colLabels = generatedLabels("col-", n)
	}

	return NewDataMatrix(squareGrid(data, n), rowLabels, colLabels)
}

// generatedLabels produces prefix-1 .. prefix-n (1-based, human-facing).
func generatedLabels(prefix string, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}

	return out
}

// squareGrid slices a flat row-major sequence into an n×n grid, copying.
func squareGrid(values []float64, n int) [][]float64 {
	grid := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		copy(row, values[i*n:(i+1)*n])
		grid[i] = row
	}

	return grid
}
