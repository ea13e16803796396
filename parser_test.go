// Package datamatrix_test: tests for source opening and line tokenization.
package datamatrix_test

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/datamatrix"
	"github.com/stretchr/testify/require"
)

// writeTempFile drops content into a fresh temp dir and returns the full path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644)) // fixture must land on disk
	return path
}

// writeTempGzip writes gzip-compressed content and returns the full path.
func writeTempGzip(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close()) // flush the gzip stream
	require.NoError(t, f.Close())
	return path
}

// TestParseLinesFiltering ensures comments and blanks vanish and never count
// toward the header skip.
func TestParseLinesFiltering(t *testing.T) {
	input := "# leading comment\n\n  \t\nname value pair\nAlice Bob 1.2\n"

	lines, err := datamatrix.ExportedParseLines(strings.NewReader(input), ' ', true)
	require.NoError(t, err)

	// The header skip consumed "name value pair", not the comment or blanks.
	require.Equal(t, [][]string{{"Alice", "Bob", "1.2"}}, lines)
}

// TestParseLinesWhitespaceCollapsing verifies space-separator mode splits on
// arbitrary whitespace runs.
func TestParseLinesWhitespaceCollapsing(t *testing.T) {
	input := "  Alice \t  Bob\t\t1.2  \n"

	lines, err := datamatrix.ExportedParseLines(strings.NewReader(input), ' ', false)
	require.NoError(t, err)

	require.Equal(t, [][]string{{"Alice", "Bob", "1.2"}}, lines) // runs collapsed, edges trimmed
}

// TestParseLinesExactSeparator verifies empty fields between consecutive
// separators are preserved in exact-split mode.
func TestParseLinesExactSeparator(t *testing.T) {
	input := "a,,b\n,x,\n"

	lines, err := datamatrix.ExportedParseLines(strings.NewReader(input), ',', false)
	require.NoError(t, err)

	require.Equal(t, [][]string{{"a", "", "b"}, {"", "x", ""}}, lines) // empties survive
}

// TestParseLinesIndentedComment ensures a comment marker behind leading
// whitespace still hides the line.
func TestParseLinesIndentedComment(t *testing.T) {
	input := "   # indented comment\nAlice Bob 1.2\n"

	lines, err := datamatrix.ExportedParseLines(strings.NewReader(input), ' ', false)
	require.NoError(t, err)

	require.Len(t, lines, 1) // only the data line remains
}

// TestOpenSourcePlain reads back an uncompressed file.
func TestOpenSourcePlain(t *testing.T) {
	path := writeTempFile(t, "plain.txt", "hello\n")

	src, err := datamatrix.ExportedOpenSource(path)
	require.NoError(t, err)
	defer src.Close()

	data, err := io.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(data)) // bytes pass through untouched
}

// TestOpenSourceGzip reads back gzip content transparently.
func TestOpenSourceGzip(t *testing.T) {
	path := writeTempGzip(t, "packed.txt.gz", "Alice Bob 1.2\n")

	src, err := datamatrix.ExportedOpenSource(path)
	require.NoError(t, err)
	defer src.Close()

	data, err := io.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, "Alice Bob 1.2\n", string(data)) // decompressed on the fly
}

// TestOpenSourceCorruptGzip surfaces a bad gzip stream as ErrIO.
func TestOpenSourceCorruptGzip(t *testing.T) {
	path := writeTempFile(t, "broken.gz", "this is not gzip")

	_, err := datamatrix.ExportedOpenSource(path)
	require.ErrorIs(t, err, datamatrix.ErrIO) // decompression setup failure
}

// TestOpenSourceFailures covers the empty-path misuse and missing files.
func TestOpenSourceFailures(t *testing.T) {
	_, err := datamatrix.ExportedOpenSource("")
	require.ErrorIs(t, err, datamatrix.ErrIO) // empty path fails immediately

	_, err = datamatrix.ExportedOpenSource(filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, datamatrix.ErrIO) // nonexistent file
}
