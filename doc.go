// Package datamatrix builds dense float64 matrices whose rows and columns
// are addressed by string labels, loading them from plain text, CSV or TSV
// files (optionally gzip-compressed) or from an in-memory value sequence.
//
// The package provides:
//
//   - DataMatrix: the validated, immutable result — a rows×cols grid plus
//     ordered row and column label vectors, queryable by position or label.
//   - Builder: a fluent, copy-on-write configuration selecting label/value
//     columns, explicit index columns, separator, header skipping and
//     symmetric mirroring, with two terminals: FromFile and FromData.
//
// Supported input formats (lines starting with '#' and blank lines are
// always ignored; one optional header line may be skipped):
//
//   - Three-column: row label, column label, value. Dense indices are
//     assigned in first-seen order.
//   - Five-column: row label, column label, row index, column index, value.
//     Positions come straight from the file; sparse index ranges simply
//     leave all-zero rows or columns behind.
//   - Single-column: one value per line; labels are supplied up front with
//     Builder.Labels and the values fill a square matrix row-major.
//
// When no separator is configured, one is inferred from the file extension
// (.csv → ',', .tsv/.tab → tab, .psv → '|', .ssv → ';', anything else →
// whitespace splitting), peeling a single compression suffix first, so
// "distances.csv.gz" parses as comma-separated gzip.
//
// Quick example:
//
//	m, err := datamatrix.NewBuilder().
//		Symmetric(true).
//		FromFile("scores.txt") // "Alice Bob 1.2" ...
//	if err != nil { ... }
//	v, _ := m.AtLabel("Bob", "Alice") // 1.2 — mirrored
//
// All failures are reported through the package sentinel errors (see
// errors.go) and carry line numbers and offending tokens in their messages;
// branch with errors.Is.
package datamatrix
