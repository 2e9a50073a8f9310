// SPDX-License-Identifier: MIT
// Package: quintet/clique
//
// narrow.go - the fixed-depth narrowing walk over one depth-0 subtree.
//
// A searcher owns frames 1..4; frame 0 (all vertices) is shared read-only by
// every searcher of the same run. A searcher must never be used by two
// goroutines at once.

package clique

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/quintet/wordgraph"
)

// searcher walks subtrees of g using its private scratch frames.
type searcher struct {
	g      *wordgraph.Graph
	frames [Size]*bitset.BitSet
}

// fullFrame returns the depth-0 candidate set: every vertex of an n-vertex graph.
func fullFrame(n int) *bitset.BitSet {
	return bitset.New(uint(n)).FlipRange(0, uint(n))
}

// newSearcher allocates frames 1..4 for g and points frame 0 at full.
func newSearcher(g *wordgraph.Graph, full *bitset.BitSet) *searcher {
	s := &searcher{g: g}
	s.frames[0] = full
	n := uint(g.Order())
	for k := 1; k < Size; k++ {
		s.frames[k] = bitset.New(n)
	}

	return s
}

// narrow overwrites frame k+1 with frame k ∧ N(v).
// InternalNeighbors panics on an out-of-range v.
func (s *searcher) narrow(k int, v uint) {
	dst := s.frames[k+1]
	s.frames[k].Copy(dst)
	dst.InPlaceIntersection(s.g.InternalNeighbors(int(v)))
}

// walk enumerates every clique whose smallest vertex is v0, in ascending
// index-tuple order, passing each to emit. It stops early and returns false
// as soon as emit returns false.
func (s *searcher) walk(v0 uint, emit func(Clique) bool) bool {
	f := s.frames
	s.narrow(0, v0)
	for v1, ok := f[1].NextSet(v0 + 1); ok; v1, ok = f[1].NextSet(v1 + 1) {
		s.narrow(1, v1)
		for v2, ok := f[2].NextSet(v1 + 1); ok; v2, ok = f[2].NextSet(v2 + 1) {
			s.narrow(2, v2)
			for v3, ok := f[3].NextSet(v2 + 1); ok; v3, ok = f[3].NextSet(v3 + 1) {
				s.narrow(3, v3)
				for v4, ok := f[4].NextSet(v3 + 1); ok; v4, ok = f[4].NextSet(v4 + 1) {
					if !emit(s.clique(v0, v1, v2, v3, v4)) {
						return false
					}
				}
			}
		}
	}

	return true
}

// clique materializes the tuple (v0..v4) with its word texts.
func (s *searcher) clique(v0, v1, v2, v3, v4 uint) Clique {
	var c Clique
	for k, v := range [Size]uint{v0, v1, v2, v3, v4} {
		c.Indices[k] = int(v)
		c.Words[k] = s.g.Word(int(v))
	}

	return c
}
