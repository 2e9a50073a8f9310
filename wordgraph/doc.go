// SPDX-License-Identifier: MIT
// Package: quintet/wordgraph
//
// Package wordgraph builds the compatibility graph of a five-letter word list:
// one vertex per word, one undirected edge per pair of words whose letter sets
// are disjoint.
//
// What:
//
//   - Build(words, opts...) assigns dense indices 0..N-1 in input order and
//     computes one adjacency bitset of length N per vertex.
//   - Graph is immutable once built and safe for concurrent readers.
//   - Accessors: Order, EdgeCount, Degree, Word, Letters, Index, HasEdge,
//     Neighbors, InternalNeighbors.
//
// Why:
//
//   - A clique of five vertices in this graph is exactly a set of five words
//     with 25 distinct letters. Keeping rows as bitsets lets the enumerator
//     narrow candidate sets with a word-wise AND instead of set merges.
//
// Invariants:
//
//   - Symmetric: j ∈ N(i) ⇔ i ∈ N(j).
//   - Irreflexive: i ∉ N(i).
//   - Words are unique by text; exact duplicates are collapsed at Build time.
//
// Complexity:
//
//   - Build:   Time O(N²) mask comparisons, Memory O(N²) bits.
//   - HasEdge: O(1). Degree: O(N/64). Neighbors: O(N/64 + d).
//
// Errors:
//
//   - ErrMalformedWord  a Word does not hold five letters matching its text.
//
// Out-of-range vertex indices are programming errors and panic.
package wordgraph
