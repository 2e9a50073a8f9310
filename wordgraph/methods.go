// SPDX-License-Identifier: MIT
// Package: quintet/wordgraph
//
// methods.go - read-only accessors on Graph.
//
// All methods are safe for concurrent use: nothing mutates a Graph after Build.
// Vertex indices outside [0, Order()) panic.

package wordgraph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/quintet/letters"
)

// Order returns the number of vertices N.
func (g *Graph) Order() int {
	return len(g.words)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Duplicates returns how many input words were dropped as exact repeats.
func (g *Graph) Duplicates() int {
	return g.duplicates
}

// Word returns the text of vertex i.
func (g *Graph) Word(i int) string {
	g.mustVertex(i)

	return g.words[i]
}

// Letters returns the letter set of vertex i.
func (g *Graph) Letters(i int) letters.LetterSet {
	g.mustVertex(i)

	return g.masks[i]
}

// Words returns a copy of all vertex texts in index order.
func (g *Graph) Words() []string {
	out := make([]string, len(g.words))
	copy(out, g.words)

	return out
}

// Index returns the vertex of text, if present.
func (g *Graph) Index(text string) (int, bool) {
	i, ok := g.index[text]

	return i, ok
}

// HasEdge reports whether i and j are adjacent. HasEdge(i, i) is always false.
// Complexity: O(1).
func (g *Graph) HasEdge(i, j int) bool {
	g.mustVertex(i)
	g.mustVertex(j)

	return g.adj[i].Test(uint(j))
}

// Degree returns the number of neighbors of i.
// Complexity: O(N/64).
func (g *Graph) Degree(i int) int {
	g.mustVertex(i)

	return int(g.adj[i].Count())
}

// Neighbors returns the neighbors of i in ascending order as a fresh slice.
// Complexity: O(N/64 + d).
func (g *Graph) Neighbors(i int) []int {
	g.mustVertex(i)
	row := g.adj[i]
	out := make([]int, 0, row.Count())
	for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out
}

// InternalNeighbors exposes the adjacency row of i without copying.
// The returned bitset is shared by every reader and MUST NOT be modified;
// it exists so search code can intersect rows without allocating.
func (g *Graph) InternalNeighbors(i int) *bitset.BitSet {
	g.mustVertex(i)

	return g.adj[i]
}

// mustVertex panics if i is not a vertex of g.
func (g *Graph) mustVertex(i int) {
	if i < 0 || i >= len(g.words) {
		panic(fmt.Sprintf("wordgraph: vertex %d out of range [0,%d)", i, len(g.words)))
	}
}
