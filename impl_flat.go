// SPDX-License-Identifier: MIT
// Package datamatrix: flat single-column strategy.
//
// Single-column input carries bare values, one per surviving line; the label
// list supplied with Builder.Labels names both axes, so the result is always
// logically square and label-symmetric (though not necessarily
// value-symmetric). Flat input is whitespace-split regardless of the
// configured separator. Line numbers in diagnostics are 1-based here.

package datamatrix

import (
	"fmt"
	"strconv"
)

// readSingleColumn parses one value per line at the configured data column
// and fills a len(labels)×len(labels) matrix row-major.
func (b Builder) readSingleColumn(path string) (*DataMatrix, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	lines, err := parseLines(src, sepWhitespace, b.skipHeader)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(lines))
	for n, parts := range lines {
		lineNo := n + 1
		// Exactly one relevant token: enough fields to reach the data column,
		// and nothing beyond it.
		if len(parts) <= b.dataCol {
			return nil, notEnoughColumnsf(lineNo, b.dataCol+1, parts)
		}
		if len(parts) > b.dataCol+1 {
			return nil, fmt.Errorf("line %d: expected a single value, got %d fields %q: %w",
				lineNo, len(parts), parts, ErrTooManyColumns)
		}
		v, perr := strconv.ParseFloat(parts[b.dataCol], 64)
		if perr != nil {
			return nil, parseErrorf(lineNo, parts[b.dataCol])
		}
		values = append(values, v)
	}

	n := len(b.labels)
	if n*n != len(values) {
		return nil, fmt.Errorf("expected %d² = %d values, found %d: %w",
			n, n*n, len(values), ErrParse)
	}

	// Same label list on both axes; the grid is filled row-major.
	return NewDataMatrix(squareGrid(values, n),
		append([]string(nil), b.labels...),
		append([]string(nil), b.labels...))
}
