// SPDX-License-Identifier: MIT
// Package: quintet/clique
//
// types.go - Clique, Result, options and sentinel errors.

package clique

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Size is the number of words in a clique. The search is specialized for it.
const Size = 5

// ErrGraphNil is returned when a nil *wordgraph.Graph is passed in.
var ErrGraphNil = errors.New("clique: graph is nil")

// Clique is one solution: five vertices, pairwise adjacent.
// Indices is strictly increasing; Words[k] is the text of Indices[k].
type Clique struct {
	Indices [Size]int
	Words   [Size]string
}

// Sorted returns the words in alphabetical order.
func (c Clique) Sorted() [Size]string {
	out := c.Words
	sort.Strings(out[:])

	return out
}

// Key returns the canonical signature of c: its words sorted and comma-joined.
// Two cliques are the same solution iff their keys are equal.
func (c Clique) Key() string {
	s := c.Sorted()

	return strings.Join(s[:], ",")
}

// Letters returns every letter of the five words, sorted. For a valid clique
// this is 25 distinct letters.
func (c Clique) Letters() string {
	b := []byte(strings.Join(c.Words[:], ""))
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })

	return string(b)
}

// Result holds the outcome of FindAll.
type Result struct {
	// Cliques are all solutions, sorted by Key.
	Cliques []Clique

	// Roots is the number of depth-0 subtrees explored (the graph order).
	Roots int

	// Workers is the number of workers that ran the search.
	Workers int
}

// Keys returns the Key of every clique, in result order.
func (r *Result) Keys() []string {
	out := make([]string, len(r.Cliques))
	for i, c := range r.Cliques {
		out[i] = c.Key()
	}

	return out
}

// Option configures FindAll and FindFirst.
type Option func(*Options)

// Options holds search parameters.
type Options struct {
	// Ctx allows cancellation between depth-0 roots; defaults to context.Background().
	Ctx context.Context

	// Workers is the number of parallel workers for FindAll. Values < 1 mean
	// runtime.GOMAXPROCS(0). FindFirst always runs on one worker.
	Workers int

	// OnRoot, if non-nil, is called after each depth-0 subtree completes with
	// the number of finished roots and the total. Calls are serialized even
	// when several workers run. Returning an error aborts the search.
	OnRoot func(done, total int) error

	// Logger receives search start/finish records. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns a sequential, silent, non-cancellable configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		OnRoot:  nil,
		Logger:  zap.NewNop(),
	}
}

// WithContext sets the context checked between roots.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker count. n < 1 selects runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// WithOnRoot installs a progress hook called after every finished root.
func WithOnRoot(fn func(done, total int) error) Option {
	return func(o *Options) {
		o.OnRoot = fn
	}
}

// WithLogger sets the logger. Passing nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
