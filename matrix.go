// SPDX-License-Identifier: MIT
// Package datamatrix: the validated dense result type.
//
// DataMatrix couples a rows×cols float64 grid with ordered row and column
// label vectors. NewDataMatrix is the single validation gate — every format
// strategy and both builder terminals construct their result through it, so a
// DataMatrix in hand always satisfies len(grid) == len(rowLabels) and
// len(grid[i]) == len(colLabels) for every i. Instances are immutable after
// construction; there is no incremental mutation API.

package datamatrix

import "fmt"

// DataMatrix is a dense float64 matrix with labeled rows and columns.
// Labels are not required to be unique; label lookups find the first match.
type DataMatrix struct {
	grid      [][]float64 // values indexed by (row, column)
	rowLabels []string    // index → row label
	colLabels []string    // index → column label
}

// NewDataMatrix validates the grid shape against both label vectors and
// returns the matrix, or ErrIncorrectMatrixLabels naming the mismatched axis.
// An empty grid is rejected: a matrix must have at least one row and column.
// Complexity: O(r) shape checks, no copying.
func NewDataMatrix(grid [][]float64, rowLabels, colLabels []string) (*DataMatrix, error) {
	// Row axis: one label per grid row.
	if len(grid) != len(rowLabels) {
		return nil, fmt.Errorf("rows: expected %d labels, grid has %d rows: %w",
			len(rowLabels), len(grid), ErrIncorrectMatrixLabels)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("rows: empty grid: %w", ErrIncorrectMatrixLabels)
	}
	// Column axis: every row must span the full label vector.
	for i := range grid {
		if len(grid[i]) != len(colLabels) {
			return nil, fmt.Errorf("columns: expected %d labels, grid row %d has %d values: %w",
				len(colLabels), i, len(grid[i]), ErrIncorrectMatrixLabels)
		}
	}

	return &DataMatrix{grid: grid, rowLabels: rowLabels, colLabels: colLabels}, nil
}

// NRows returns the number of rows. Complexity: O(1).
func (m *DataMatrix) NRows() int {
	return len(m.grid)
}

// NCols returns the number of columns. Complexity: O(1).
func (m *DataMatrix) NCols() int {
	return len(m.colLabels)
}

// At retrieves the value at (row, col), or ErrIndexOutOfBounds.
func (m *DataMatrix) At(row, col int) (float64, error) {
	if row < 0 || row >= len(m.grid) {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= len(m.colLabels) {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return m.grid[row][col], nil
}

// AtLabel retrieves the value addressed by a row and a column label.
// With duplicate labels the first occurrence along each axis wins.
// Returns ErrUnknownLabel when either label is absent.
// Complexity: O(r + c) linear scans.
func (m *DataMatrix) AtLabel(rowLabel, colLabel string) (float64, error) {
	i, ok := m.RowIndex(rowLabel)
	if !ok {
		return 0, fmt.Errorf("AtLabel: row %q: %w", rowLabel, ErrUnknownLabel)
	}
	j, ok := m.ColIndex(colLabel)
	if !ok {
		return 0, fmt.Errorf("AtLabel: column %q: %w", colLabel, ErrUnknownLabel)
	}

	return m.grid[i][j], nil
}

// RowIndex returns the position of the first row carrying the given label.
func (m *DataMatrix) RowIndex(label string) (int, bool) {
	for i, l := range m.rowLabels {
		if l == label {
			return i, true
		}
	}

	return 0, false
}

// ColIndex returns the position of the first column carrying the given label.
func (m *DataMatrix) ColIndex(label string) (int, bool) {
	for j, l := range m.colLabels {
		if l == label {
			return j, true
		}
	}

	return 0, false
}

// RowLabel returns the label of the row at the given position,
// or ErrIndexOutOfBounds.
func (m *DataMatrix) RowLabel(i int) (string, error) {
	if i < 0 || i >= len(m.rowLabels) {
		return "", fmt.Errorf("RowLabel(%d): %w", i, ErrIndexOutOfBounds)
	}

	return m.rowLabels[i], nil
}

// ColLabel returns the label of the column at the given position,
// or ErrIndexOutOfBounds.
func (m *DataMatrix) ColLabel(j int) (string, error) {
	if j < 0 || j >= len(m.colLabels) {
		return "", fmt.Errorf("ColLabel(%d): %w", j, ErrIndexOutOfBounds)
	}

	return m.colLabels[j], nil
}

// RowLabels returns a copy of the ordered row label vector.
// For a symmetric build this equals ColLabels.
func (m *DataMatrix) RowLabels() []string {
	return append([]string(nil), m.rowLabels...)
}

// ColLabels returns a copy of the ordered column label vector.
func (m *DataMatrix) ColLabels() []string {
	return append([]string(nil), m.colLabels...)
}

// Grid exposes the raw value grid without copying.
// The grid is shared with the matrix and MUST be treated as read-only;
// use Clone for a mutable snapshot.
func (m *DataMatrix) Grid() [][]float64 {
	return m.grid
}

// IsSquare reports whether the matrix has as many rows as columns.
func (m *DataMatrix) IsSquare() bool {
	return m.NRows() == m.NCols()
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(r*c) time and memory.
func (m *DataMatrix) Clone() *DataMatrix {
	grid := make([][]float64, len(m.grid))
	for i, row := range m.grid {
		grid[i] = append([]float64(nil), row...) // copy each row
	}

	return &DataMatrix{
		grid:      grid,
		rowLabels: append([]string(nil), m.rowLabels...),
		colLabels: append([]string(nil), m.colLabels...),
	}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *DataMatrix) String() string {
	var s string
	for i := range m.grid { // iterate over rows
		s += "[" // open row
		for j, v := range m.grid[i] {
			s += fmt.Sprintf("%g", v)
			if j < len(m.grid[i])-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
