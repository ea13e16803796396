// SPDX-License-Identifier: MIT
// Package datamatrix: separator inference.
//
// When no separator is configured explicitly, one is inferred from the file
// name alone — a pure decision table over the extension, not content sniffing.
// Exactly one compression suffix is peeled before inspecting the remaining
// extension, so "distances.csv.gz" still reads as comma-separated.

package datamatrix

import (
	"path/filepath"
	"strings"
)

// sepWhitespace is the default separator: split on any run of whitespace.
const sepWhitespace = ' '

// compression suffixes peeled (case-insensitively) before inference.
// Only gzip is transparently decompressed on open; the remaining suffixes
// participate in separator inference only.
var compressionExts = map[string]bool{
	"gz":  true,
	"bz2": true,
	"xz":  true,
	"zst": true,
	"zip": true,
}

// inferSeparator maps a path to a field separator by extension
// (case-insensitive):
//
//	csv → ','   tsv, tab → '\t'   psv → '|'   ssv → ';'
//	dat, unrecognized or absent → ' ' (whitespace-split mode)
//
// Runs once per FromFile call; never cached across calls.
func inferSeparator(path string) rune {
	ext := lowerExt(path)
	if compressionExts[ext] {
		// Peel exactly one compression layer and inspect what is underneath.
		ext = lowerExt(strings.TrimSuffix(path, filepath.Ext(path)))
	}

	switch ext {
	case "csv":
		return ','
	case "tsv", "tab":
		return '\t'
	case "psv":
		return '|'
	case "ssv":
		return ';'
	default: // covers "dat", unknown extensions and extensionless paths
		return sepWhitespace
	}
}

// lowerExt returns the lower-cased extension of path without the leading dot.
func lowerExt(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
