// SPDX-License-Identifier: MIT
// Package: quintet/wordgraph
//
// build.go - Build: word list → compatibility graph.
//
// Contract:
//   - Indices are dense and follow input order after duplicate removal.
//   - Each unordered pair is compared once; both bits are set together, so the
//     adjacency is symmetric by construction and never has i ∈ N(i).
//   - The letter sets carried by the Words are trusted once validated; they are
//     never recomputed inside the pair loop.

package wordgraph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/quintet/letters"
)

// Build constructs the compatibility graph of words.
//
// Exact-text duplicates are collapsed (first occurrence kept) and counted in
// Duplicates. An empty input yields the empty graph.
//
// Complexity: O(N²) time, O(N²) bits of memory.
//
// Errors:
//   - ErrMalformedWord (wrapped with the offending position) if any Word is
//     not a valid five-distinct-letter word.
func Build(words []letters.Word, opts ...Option) (*Graph, error) {
	// 1. Resolve options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Validate and assign indices, collapsing duplicates.
	g := &Graph{
		words: make([]string, 0, len(words)),
		masks: make([]letters.LetterSet, 0, len(words)),
		index: make(map[string]int, len(words)),
	}
	for pos, w := range words {
		if !w.Valid() {
			return nil, fmt.Errorf("wordgraph: Build: word %d (%q): %w", pos, w.Text, ErrMalformedWord)
		}
		if _, dup := g.index[w.Text]; dup {
			g.duplicates++
			continue
		}
		g.index[w.Text] = len(g.words)
		g.words = append(g.words, w.Text)
		g.masks = append(g.masks, w.Letters)
	}

	// 3. Allocate one row per vertex.
	n := len(g.words)
	g.adj = make([]*bitset.BitSet, n)
	for i := range g.adj {
		g.adj[i] = bitset.New(uint(n))
	}

	// 4. Compare each unordered pair once; row i is final once its turn ends,
	//    since bits from smaller j were set on earlier turns.
	for i := 0; i < n; i++ {
		mi := g.masks[i]
		row := g.adj[i]
		for j := i + 1; j < n; j++ {
			if mi&g.masks[j] != 0 {
				continue
			}
			row.Set(uint(j))
			g.adj[j].Set(uint(i))
			g.edges++
		}
		if o.OnRow != nil {
			o.OnRow(i)
		}
	}

	return g, nil
}
