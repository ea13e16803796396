// SPDX-License-Identifier: MIT
// Package datamatrix: labeled-format strategies (three- and five-column).
//
// Both strategies run two clearly separated passes over the materialized
// token buffer:
//
//	Pass 1 (Index): resolve every label to a dense position — first-seen
//	  order for the three-column format, file-supplied indices for the
//	  five-column format. Symmetric builds funnel both label columns into
//	  the row indexer, then the column indexer becomes a copy of it, so a
//	  label appearing only as a column still acquires a row.
//	Pass 2 (Fill): allocate the zero grid, parse values, write cells;
//	  symmetric builds mirror every entry into the transposed cell
//	  (self-referential entries are written once).
//
// Line numbers in diagnostics are 0-based positions among parsed
// (post-filter) lines.

package datamatrix

import "strconv"

// buildTriplet assembles a matrix from (row label, col label, value) lines.
// Dimensions equal each indexer's distinct-label count.
func (b Builder) buildTriplet(lines [][]string) (*DataMatrix, error) {
	rowIdx := newIndexer(b.strict)
	colIdx := newIndexer(b.strict)
	needed := max(b.rowLabelCol, b.colLabelCol, b.dataCol) + 1

	// Pass 1 (Index): assign dense positions in first-seen order.
	for n, parts := range lines {
		if len(parts) < needed {
			return nil, notEnoughColumnsf(n, needed, parts)
		}
		rowIdx.add(parts[b.rowLabelCol])
		if b.symmetric {
			rowIdx.add(parts[b.colLabelCol]) // one shared index space
		} else {
			colIdx.add(parts[b.colLabelCol])
		}
	}
	if b.symmetric {
		colIdx = rowIdx.clone() // identical mapping on both axes
	}

	return b.fillLabeled(lines, rowIdx, colIdx)
}

// buildQuintuple assembles a matrix from
// (row label, col label, row index, col index, value) lines.
// Dimensions equal the highest accepted index plus one per axis; sparse or
// non-contiguous indices leave accepted all-zero rows/columns behind.
func (b Builder) buildQuintuple(lines [][]string) (*DataMatrix, error) {
	rowIdx := newIndexer(b.strict)
	colIdx := newIndexer(b.strict)
	needed := max(b.rowLabelCol, b.colLabelCol, b.dataCol, b.rowIdxCol, b.colIdxCol) + 1

	// Pass 1 (Index): bind labels to the file-supplied positions.
	for n, parts := range lines {
		if len(parts) < needed {
			return nil, notEnoughColumnsf(n, needed, parts)
		}
		ri, err := parseIndexToken(parts[b.rowIdxCol], n)
		if err != nil {
			return nil, err
		}
		ci, err := parseIndexToken(parts[b.colIdxCol], n)
		if err != nil {
			return nil, err
		}
		if err = rowIdx.addExplicit(parts[b.rowLabelCol], ri); err != nil {
			return nil, err
		}
		target := colIdx
		if b.symmetric {
			target = rowIdx // column labels join the row index space
		}
		if err = target.addExplicit(parts[b.colLabelCol], ci); err != nil {
			return nil, err
		}
	}
	if b.symmetric {
		colIdx = rowIdx.clone()
	}

	return b.fillLabeled(lines, rowIdx, colIdx)
}

// fillLabeled is Pass 2, shared by both labeled strategies: allocate the zero
// grid sized by the indexers, resolve each line's cell, parse and write the
// value, mirroring when symmetric. Ends at the NewDataMatrix validation gate.
func (b Builder) fillLabeled(lines [][]string, rowIdx, colIdx *indexer) (*DataMatrix, error) {
	grid := make([][]float64, rowIdx.size())
	for i := range grid {
		grid[i] = make([]float64, colIdx.size())
	}

	for n, parts := range lines {
		i, err := rowIdx.indexOf(parts[b.rowLabelCol])
		if err != nil {
			return nil, err
		}
		j, err := colIdx.indexOf(parts[b.colLabelCol])
		if err != nil {
			return nil, err
		}
		v, perr := strconv.ParseFloat(parts[b.dataCol], 64)
		if perr != nil {
			return nil, parseErrorf(n, parts[b.dataCol])
		}
		grid[i][j] = v
		if b.symmetric && i != j {
			grid[j][i] = v // mirrored cell; a later explicit line may overwrite it
		}
	}

	return NewDataMatrix(grid, rowIdx.labels(), colIdx.labels())
}

// parseIndexToken parses an explicit matrix index: a non-negative integer.
func parseIndexToken(token string, line int) (int, error) {
	idx, err := strconv.Atoi(token)
	if err != nil || idx < 0 {
		return 0, parseErrorf(line, token)
	}

	return idx, nil
}
