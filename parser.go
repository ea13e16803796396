// SPDX-License-Identifier: MIT
// Package datamatrix: line-oriented input handling.
//
// openSource turns a path into a byte stream, transparently decompressing
// gzip by file name. parseLines buffers the whole source into an ordered
// sequence of tokenized lines before any indexing begins — the two-pass
// strategies need the materialized buffer, and peak memory stays
// O(file size + matrix size) by contract.

package datamatrix

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single input line; inputs here are data tables, not
// documents, so 1 MiB of slack is generous.
const maxLineBytes = 1 << 20

// openSource opens path for reading, wrapping it in a gzip decompressor when
// the name ends in ".gz" (case-insensitive). All failures, including the
// empty-path misuse, surface as ErrIO. The returned closer releases both the
// decompressor and the underlying file.
func openSource(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, fmt.Errorf("open: empty path: %w", ErrIO)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf("open "+path, err)
	}
	if lowerExt(path) == "gz" {
		zr, zerr := gzip.NewReader(f)
		if zerr != nil {
			_ = f.Close() // release the handle before reporting
			return nil, ioErrorf("decompress "+path, zerr)
		}

		return &gzipSource{zr: zr, file: f}, nil
	}

	return f, nil
}

// gzipSource pairs a gzip reader with its backing file so that Close
// deterministically releases both on every exit path.
type gzipSource struct {
	zr   *gzip.Reader
	file *os.File
}

func (g *gzipSource) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipSource) Close() error {
	zerr := g.zr.Close()
	ferr := g.file.Close()
	if zerr != nil {
		return zerr
	}

	return ferr
}

// parseLines reads r to the end and returns one token slice per surviving
// line, in input order.
//
//   - Lines empty after trimming, or whose first non-whitespace byte is '#',
//     are dropped unconditionally and never count toward the header skip.
//   - When skipHeader is set, the first surviving line is dropped untokenized.
//   - Tokenization: sep == ' ' splits on runs of any whitespace (leading and
//     trailing ignored); any other separator splits exactly, preserving empty
//     fields between consecutive occurrences.
//
// Read failures surface as ErrIO.
func parseLines(r io.Reader, sep rune, skipHeader bool) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines [][]string
	headerDropped := false
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue // comment or blank: invisible to the header skip
		}
		if skipHeader && !headerDropped {
			headerDropped = true
			continue // drop the single header line untokenized
		}
		var parts []string
		if sep == sepWhitespace {
			parts = strings.Fields(line) // collapse whitespace runs
		} else {
			parts = strings.Split(line, string(sep)) // exact split, empties kept
		}
		lines = append(lines, parts)
	}
	if err := sc.Err(); err != nil {
		return nil, ioErrorf("read", err)
	}

	return lines, nil
}
