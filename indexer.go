// SPDX-License-Identifier: MIT
// Package datamatrix: label→index assignment.
//
// The indexer deduplicates labels and assigns each distinct one a dense
// zero-based position. It operates in one of two mutually exclusive modes per
// logical use:
//
//   - auto-increment: the first occurrence of a new label takes the next free
//     index; later occurrences reuse it (three-column format);
//   - explicit: the caller supplies the index per label (five-column format).
//     The first assignment wins; later explicit assignments for a known label
//     are ignored unless strict mode is on, in which case re-assignment to a
//     DIFFERENT index fails with ErrConflictingIndex.
//
// In explicit mode the dimension along the axis is the highest accepted index
// plus one, so sparse index ranges leave padding positions with empty labels.

package datamatrix

import "fmt"

// indexer assigns and tracks dense integer positions for labels.
type indexer struct {
	labelToIndex map[string]int
	explicit     bool // explicit-index mode: size derives from the highest index
	maxIdx       int  // highest accepted explicit index; -1 until one is seen
	strict       bool // reject conflicting explicit re-assignments
}

// newIndexer returns an empty indexer; strict toggles conflict detection
// for explicit assignments.
func newIndexer(strict bool) *indexer {
	return &indexer{
		labelToIndex: make(map[string]int),
		maxIdx:       -1,
		strict:       strict,
	}
}

// add registers label in auto-increment mode and returns its dense index.
// A known label keeps its original position. Complexity: O(1).
func (ix *indexer) add(label string) int {
	if idx, ok := ix.labelToIndex[label]; ok {
		return idx // already indexed, reuse
	}
	idx := len(ix.labelToIndex) // next free position
	ix.labelToIndex[label] = idx

	return idx
}

// addExplicit binds label to the supplied index. The first assignment wins;
// a later assignment for a known label is silently ignored, except in strict
// mode when it names a different index.
func (ix *indexer) addExplicit(label string, idx int) error {
	ix.explicit = true
	if have, ok := ix.labelToIndex[label]; ok {
		if ix.strict && have != idx {
			return fmt.Errorf("label %q already bound to index %d, re-assigned to %d: %w",
				label, have, idx, ErrConflictingIndex)
		}

		return nil // first assignment wins
	}
	ix.labelToIndex[label] = idx
	if idx > ix.maxIdx {
		ix.maxIdx = idx
	}

	return nil
}

// indexOf returns the dense index for label. Every label referenced during
// the fill pass was registered during the index pass, so a miss is an
// internal invariant violation surfaced as ErrUnknownLabel.
func (ix *indexer) indexOf(label string) (int, error) {
	if idx, ok := ix.labelToIndex[label]; ok {
		return idx, nil
	}

	return 0, fmt.Errorf("indexOf: label %q: %w", label, ErrUnknownLabel)
}

// size returns the matrix dimension along this axis: the distinct-label count
// in auto mode, the highest accepted index plus one in explicit mode.
func (ix *indexer) size() int {
	if ix.explicit {
		return ix.maxIdx + 1
	}

	return len(ix.labelToIndex)
}

// labels materializes the index→label vector, ordered by assigned index (not
// by arrival order when explicit indices are non-contiguous). Positions no
// label was bound to stay empty strings. If two labels were explicitly bound
// to the same index, the slot keeps one of them; which one is unspecified —
// that permissiveness mirrors addExplicit's first-wins policy.
func (ix *indexer) labels() []string {
	out := make([]string, ix.size())
	for label, idx := range ix.labelToIndex {
		out[idx] = label
	}

	return out
}

// clone returns an independent copy, used to share one label space across
// both axes of a symmetric build.
func (ix *indexer) clone() *indexer {
	m := make(map[string]int, len(ix.labelToIndex))
	for label, idx := range ix.labelToIndex {
		m[label] = idx
	}

	return &indexer{labelToIndex: m, explicit: ix.explicit, maxIdx: ix.maxIdx, strict: ix.strict}
}
