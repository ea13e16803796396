// SPDX-License-Identifier: MIT
// Package datamatrix: sentinel error set.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics; the
//     formatted text is diagnostic context, not contract.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Call sites attach context (line number, offending token, expected vs.
//     actual counts) via fmt.Errorf("...: %w", ErrX) so the error is
//     actionable without re-reading the input file.
//   - No panics on user-triggered conditions; a malformed file or a bad path
//     is an error, not a bug. Panics are reserved for programmer errors in
//     builder setters (negative column indexes).

package datamatrix

import (
	"errors"
	"fmt"
)

// ErrIncorrectMatrixLabels indicates that the number of row or column labels
// does not match the shape of the value grid at construction time.
// Usage: if errors.Is(err, ErrIncorrectMatrixLabels) { /* fix labels */ }.
var ErrIncorrectMatrixLabels = errors.New("datamatrix: label count does not match matrix shape")

// ErrNotEnoughColumns indicates that an input line holds fewer fields than
// the highest configured column index requires.
var ErrNotEnoughColumns = errors.New("datamatrix: not enough columns")

// ErrTooManyColumns indicates that a single-column input line carries more
// fields than the one expected value.
var ErrTooManyColumns = errors.New("datamatrix: too many columns")

// ErrParse indicates that a field did not parse as the required numeric type,
// or that the total value count of a single-column input is inconsistent with
// the supplied labels.
var ErrParse = errors.New("datamatrix: invalid value")

// ErrWrongNumberOfData indicates that a raw value sequence cannot fill a
// square matrix because its length is not a perfect square.
var ErrWrongNumberOfData = errors.New("datamatrix: wrong number of data")

// ErrIO wraps failures to open, read or decompress an input source, including
// the empty-path misuse case.
var ErrIO = errors.New("datamatrix: i/o error")

// ErrIndexOutOfBounds indicates that a row or column position is outside the
// matrix shape. Public indexers (At, RowLabel, ColLabel) return this, never panic.
var ErrIndexOutOfBounds = errors.New("datamatrix: index out of bounds")

// ErrUnknownLabel indicates that a referenced row or column label is not
// present in the matrix.
var ErrUnknownLabel = errors.New("datamatrix: unknown label")

// ErrConflictingIndex is returned in strict-index mode when a label is
// explicitly re-assigned to a different index than the one it already holds.
// The permissive default keeps the first assignment and ignores the rest.
var ErrConflictingIndex = errors.New("datamatrix: conflicting explicit index")

// parseErrorf attaches a line position and the offending token to ErrParse.
func parseErrorf(line int, content string) error {
	return fmt.Errorf("line %d: invalid value %q: %w", line, content, ErrParse)
}

// notEnoughColumnsf attaches position, required field count and the line
// content to ErrNotEnoughColumns.
func notEnoughColumnsf(line, needed int, fields []string) error {
	return fmt.Errorf("line %d: need at least %d columns, got %d %q: %w",
		line, needed, len(fields), fields, ErrNotEnoughColumns)
}

// ioErrorf attaches source context to ErrIO while preserving the cause text.
func ioErrorf(context string, err error) error {
	return fmt.Errorf("%s: %v: %w", context, err, ErrIO)
}
