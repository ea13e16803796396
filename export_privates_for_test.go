// SPDX-License-Identifier: MIT

package datamatrix

// Test-Bridge (White-Box) for Private Helpers
//
// Purpose:
//   - Expose UNEXPORTED parsing/indexing helpers to datamatrix_test ONLY.
//   - Enable white-box verification without widening the production API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds; it is in
//     package datamatrix, so it can reach private symbols.
//
// Behavior & Determinism:
//   - Thin pass-through wrappers; no side effects beyond the wrapped calls.

var (
	// ExportedInferSeparator exposes inferSeparator for white-box tests.
	ExportedInferSeparator = inferSeparator
	// ExportedParseLines exposes parseLines for white-box tests.
	ExportedParseLines = parseLines
	// ExportedOpenSource exposes openSource for white-box tests.
	ExportedOpenSource = openSource
)

// IndexerProbe wraps the unexported indexer so label→index semantics can be
// verified from the black-box test package.
type IndexerProbe struct{ ix *indexer }

// NewIndexerProbe_TestOnly builds a fresh indexer behind a probe.
func NewIndexerProbe_TestOnly(strict bool) *IndexerProbe {
	return &IndexerProbe{ix: newIndexer(strict)}
}

// Add forwards to indexer.add.
func (p *IndexerProbe) Add(label string) int { return p.ix.add(label) }

// AddExplicit forwards to indexer.addExplicit.
func (p *IndexerProbe) AddExplicit(label string, idx int) error { return p.ix.addExplicit(label, idx) }

// IndexOf forwards to indexer.indexOf.
func (p *IndexerProbe) IndexOf(label string) (int, error) { return p.ix.indexOf(label) }

// Size forwards to indexer.size.
func (p *IndexerProbe) Size() int { return p.ix.size() }

// Labels forwards to indexer.labels.
func (p *IndexerProbe) Labels() []string { return p.ix.labels() }

// Clone returns a probe over an independent indexer copy.
func (p *IndexerProbe) Clone() *IndexerProbe { return &IndexerProbe{ix: p.ix.clone()} }

// Panic message export to avoid magic strings in tests.
const PanicNegativeColumn_TestOnly = panicNegativeColumn
