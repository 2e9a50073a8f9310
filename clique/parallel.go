// SPDX-License-Identifier: MIT
// Package: quintet/clique
//
// parallel.go - depth-0 partition over a fixed worker pool.
//
// Contract:
//   - One feeder goroutine sends roots 0..N-1 on an unbuffered channel.
//   - Each worker owns one searcher (frames 1..4) and one output slice for its
//     whole lifetime; nothing mutable is shared between workers.
//   - Output slices are concatenated only after errgroup.Wait returns.
//   - The first error (context or hook) cancels the group; remaining workers
//     stop at their next root boundary.

package clique

import (
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/quintet/wordgraph"
)

// findParallel runs the walk with the given number of workers (> 1).
func findParallel(g *wordgraph.Graph, full *bitset.BitSet, o Options, prog *progress, workers int) ([]Clique, error) {
	eg, ctx := errgroup.WithContext(o.Ctx)
	roots := make(chan uint)

	// 1. Feeder: stops early once the group is cancelled.
	eg.Go(func() error {
		defer close(roots)
		for v0 := 0; v0 < g.Order(); v0++ {
			select {
			case roots <- uint(v0):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	// 2. Workers: private searcher, private output.
	local := make([][]Clique, workers)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			s := newSearcher(g, full)
			collect := func(c Clique) bool {
				local[w] = append(local[w], c)
				return true
			}
			for v0 := range roots {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.walk(v0, collect)
				if err := prog.done(); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 3. Merge post-hoc.
	total := 0
	for _, part := range local {
		total += len(part)
	}
	out := make([]Clique, 0, total)
	for _, part := range local {
		out = append(out, part...)
	}

	return out, nil
}

// progress serializes OnRoot calls across workers.
type progress struct {
	mu    sync.Mutex
	count int
	total int
	hook  func(done, total int) error
}

func newProgress(total int, hook func(done, total int) error) *progress {
	return &progress{total: total, hook: hook}
}

// done records one finished root and runs the hook, if any.
func (p *progress) done() error {
	if p.hook == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.count++
	if err := p.hook(p.count, p.total); err != nil {
		return fmt.Errorf("clique: OnRoot hook at root %d/%d: %w", p.count, p.total, err)
	}

	return nil
}
