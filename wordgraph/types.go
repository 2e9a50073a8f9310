// SPDX-License-Identifier: MIT
// Package: quintet/wordgraph
//
// types.go - Graph, build options and sentinel errors.

package wordgraph

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/quintet/letters"
)

// ErrMalformedWord indicates a letters.Word that violates the five-distinct-letter
// contract (e.g. a zero Word, or Letters not matching Text).
var ErrMalformedWord = errors.New("wordgraph: malformed word")

// Option configures Build.
type Option func(*Options)

// Options holds Build knobs.
type Options struct {
	// OnRow, if non-nil, is called with i after adjacency row i is final.
	// Rows finish in ascending order.
	OnRow func(i int)
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnRow installs a progress hook invoked once per finished row.
// Panics on nil.
func WithOnRow(fn func(i int)) Option {
	if fn == nil {
		panic("wordgraph: WithOnRow(nil)")
	}
	return func(o *Options) { o.OnRow = fn }
}

// Graph is the read-only compatibility graph of a word list.
//
// words[i] and masks[i] describe vertex i; adj[i] has bit j set iff
// (i, j) is an edge. index maps text back to its vertex.
type Graph struct {
	words      []string
	masks      []letters.LetterSet
	adj        []*bitset.BitSet
	index      map[string]int
	edges      int
	duplicates int
}
