// SPDX-License-Identifier: MIT
// Package: quintet/clique
//
// Package clique enumerates the 5-cliques of a wordgraph.Graph: sets of five
// words that pairwise share no letter.
//
// What:
//
//   - FindAll(g, opts...):   exhaustive mode, every 5-clique exactly once.
//   - FindFirst(g, opts...): first-match mode, the clique with the smallest
//     index tuple, or ok=false when none exists.
//
// How (progressive neighbor narrowing):
//
//	frame0 = all vertices
//	for v0 in frame0:             frame1 = frame0 ∧ N(v0)
//	  for v1 > v0 in frame1:      frame2 = frame1 ∧ N(v1)
//	    for v2 > v1 in frame2:    frame3 = frame2 ∧ N(v2)
//	      for v3 > v2 in frame3:  frame4 = frame3 ∧ N(v3)
//	        for v4 > v3 in frame4: emit {v0..v4}
//
// Each frame is a bitset of length N; narrowing is a word-wise copy followed
// by an in-place AND. The strict index order (v_k > v_{k-1}) makes every
// clique appear once, with no visited set. Frames 1..4 are allocated once per
// worker and overwritten on every iteration.
//
// Parallelism:
//
//   - Fixing v0 splits the search into N disjoint subtrees. WithWorkers(n)
//     hands roots to n workers; each worker owns its frames and its output
//     slice, and slices are merged after every worker has returned.
//   - The graph is shared read-only; no locks guard it.
//   - Results are sorted by Clique.Key, so sequential and parallel runs return
//     identical slices.
//
// Cancellation:
//
//   - WithContext(ctx) is checked between depth-0 roots only. A cancelled
//     search returns ctx.Err() and no partial result.
//
// Complexity:
//
//   - Time:   O(N · Σ_k |frame_k| · N/64) in the worst case; in practice bounded
//     by the number of 2-, 3- and 4-cliques times N/64.
//   - Memory: O(W · N) bits of scratch for W workers, plus the output.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil.
//   - context.Canceled / context.DeadlineExceeded via WithContext.
//   - errors returned by the OnRoot hook, wrapped.
package clique
