// SPDX-License-Identifier: MIT
// Package: quintet/clique
//
// find.go - FindAll (sequential or worker pool) and FindFirst.

package clique

import (
	"sort"
	"time"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"

	"github.com/katalvlaran/quintet/wordgraph"
)

// FindAll returns every 5-clique of g exactly once, sorted by Key.
//
// With one worker the roots are walked in order on the calling goroutine.
// With more, roots are distributed over a pool; each worker keeps its own
// frames and output slice, merged after all workers return.
//
// Errors: ErrGraphNil; the context error if cancelled between roots; the
// OnRoot hook error, wrapped.
func FindAll(g *wordgraph.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Never run more workers than roots.
	n := g.Order()
	workers := o.Workers
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	log := o.Logger.With(zap.Int("vertices", n), zap.Int("workers", workers))
	log.Debug("clique search started")
	start := time.Now()

	// 4. Walk.
	var (
		found []Clique
		err   error
	)
	full := fullFrame(n)
	prog := newProgress(n, o.OnRoot)
	if workers == 1 {
		found, err = findSequential(g, full, o, prog)
	} else {
		found, err = findParallel(g, full, o, prog, workers)
	}
	if err != nil {
		log.Debug("clique search aborted", zap.Error(err))
		return nil, err
	}

	// 5. Canonical order makes sequential and parallel output identical.
	sort.Slice(found, func(i, j int) bool {
		return found[i].Key() < found[j].Key()
	})

	log.Info("clique search finished",
		zap.Int("cliques", len(found)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{Cliques: found, Roots: n, Workers: workers}, nil
}

// FindFirst returns the clique with the lexicographically smallest index
// tuple, stopping the walk as soon as it is found. ok is false if g has no
// 5-clique. Workers is ignored; the walk is always sequential.
func FindFirst(g *wordgraph.Graph, opts ...Option) (c Clique, ok bool, err error) {
	if g == nil {
		return Clique{}, false, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.Order()
	s := newSearcher(g, fullFrame(n))
	prog := newProgress(n, o.OnRoot)
	stop := func(found Clique) bool {
		c, ok = found, true
		return false
	}
	for v0 := 0; v0 < n; v0++ {
		if err = o.Ctx.Err(); err != nil {
			return Clique{}, false, err
		}
		if !s.walk(uint(v0), stop) {
			o.Logger.Debug("clique found", zap.Strings("words", c.Words[:]))
			return c, true, nil
		}
		if err = prog.done(); err != nil {
			return Clique{}, false, err
		}
	}

	return Clique{}, false, nil
}

// findSequential walks every root on the calling goroutine with one searcher.
func findSequential(g *wordgraph.Graph, full *bitset.BitSet, o Options, prog *progress) ([]Clique, error) {
	var out []Clique
	s := newSearcher(g, full)
	collect := func(c Clique) bool {
		out = append(out, c)
		return true
	}
	for v0 := 0; v0 < g.Order(); v0++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		s.walk(uint(v0), collect)
		if err := prog.done(); err != nil {
			return nil, err
		}
	}

	return out, nil
}
