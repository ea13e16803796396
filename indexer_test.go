// Package datamatrix_test: white-box tests for the label indexer, reached
// through the test bridge in export_privates_for_test.go.
package datamatrix_test

import (
	"testing"

	"github.com/katalvlaran/datamatrix"
	"github.com/stretchr/testify/require"
)

// TestIndexerAutoIncrement verifies first-seen ordering and deduplication.
func TestIndexerAutoIncrement(t *testing.T) {
	ix := datamatrix.NewIndexerProbe_TestOnly(false)

	require.Equal(t, 0, ix.Add("Alice")) // first label takes index 0
	require.Equal(t, 1, ix.Add("Bob"))   // next free index
	require.Equal(t, 0, ix.Add("Alice")) // repeat reuses the original index
	require.Equal(t, 2, ix.Add("John"))  // dedup did not consume an index

	require.Equal(t, 3, ix.Size())                                   // three distinct labels
	require.Equal(t, []string{"Alice", "Bob", "John"}, ix.Labels())  // ordered by index
}

// TestIndexerExplicitFirstWins ensures a later explicit assignment for a
// known label is silently ignored in permissive mode.
func TestIndexerExplicitFirstWins(t *testing.T) {
	ix := datamatrix.NewIndexerProbe_TestOnly(false)

	require.NoError(t, ix.AddExplicit("Alice", 2)) // first assignment
	require.NoError(t, ix.AddExplicit("Alice", 0)) // conflicting, ignored

	i, err := ix.IndexOf("Alice")
	require.NoError(t, err)
	require.Equal(t, 2, i)         // first assignment won
	require.Equal(t, 3, ix.Size()) // dimension follows the accepted index
}

// TestIndexerStrictConflict ensures strict mode rejects re-assignment to a
// different index but tolerates a repeated identical assignment.
func TestIndexerStrictConflict(t *testing.T) {
	ix := datamatrix.NewIndexerProbe_TestOnly(true)

	require.NoError(t, ix.AddExplicit("Alice", 1)) // initial binding
	require.NoError(t, ix.AddExplicit("Alice", 1)) // identical repeat is fine

	err := ix.AddExplicit("Alice", 4) // different index
	require.ErrorIs(t, err, datamatrix.ErrConflictingIndex)
}

// TestIndexerSparseExplicit verifies max-index sizing and empty-label padding
// for non-contiguous explicit indices.
func TestIndexerSparseExplicit(t *testing.T) {
	ix := datamatrix.NewIndexerProbe_TestOnly(false)

	require.NoError(t, ix.AddExplicit("far", 4))  // sparse assignment
	require.NoError(t, ix.AddExplicit("near", 1)) // arrival order ≠ index order

	require.Equal(t, 5, ix.Size())                                     // highest index + 1
	require.Equal(t, []string{"", "near", "", "", "far"}, ix.Labels()) // gaps stay empty
}

// TestIndexerEmpty covers the zero-state of both modes.
func TestIndexerEmpty(t *testing.T) {
	ix := datamatrix.NewIndexerProbe_TestOnly(false)

	require.Equal(t, 0, ix.Size())  // nothing indexed yet
	require.Empty(t, ix.Labels())   // no materialized labels

	_, err := ix.IndexOf("ghost")
	require.ErrorIs(t, err, datamatrix.ErrUnknownLabel) // miss is surfaced, not panicked
}

// TestIndexerCloneIndependence ensures a clone does not share state.
func TestIndexerCloneIndependence(t *testing.T) {
	ix := datamatrix.NewIndexerProbe_TestOnly(false)
	ix.Add("Alice") // seed one label

	c := ix.Clone()
	c.Add("Bob") // grow only the clone

	require.Equal(t, 1, ix.Size()) // original untouched
	require.Equal(t, 2, c.Size())  // clone grew
}
