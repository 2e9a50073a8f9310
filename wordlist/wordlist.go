// Package wordlist reads a dictionary, one word per line, and keeps only
// the words a quintet can use: five letters a..z, none repeated.
//
// Lines are trimmed; blank lines are skipped. Exact duplicates are dropped
// (first occurrence wins) so downstream indices stay one-per-word.
//
// Complexity: O(L) for L input lines, O(W) memory for W accepted words.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/quintet/letters"
)

// ErrReaderNil is returned when Read is given a nil io.Reader.
var ErrReaderNil = errors.New("wordlist: reader is nil")

// Option configures Read and ReadFile.
type Option func(*Options)

// Options holds the ingestion knobs.
type Options struct {
	// FoldCase lowercases every line before validation.
	FoldCase bool

	// CommentPrefix, if non-empty, skips lines starting with it.
	CommentPrefix string

	// OnReject, if non-nil, receives every non-blank line that failed
	// validation together with the reason.
	OnReject func(line string, reason error)
}

// DefaultOptions returns exact matching with no comment syntax and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithFoldCase lowercases input lines, so "Fjord" is read as "fjord".
func WithFoldCase() Option {
	return func(o *Options) { o.FoldCase = true }
}

// WithCommentPrefix skips lines that start with prefix (after trimming).
func WithCommentPrefix(prefix string) Option {
	return func(o *Options) { o.CommentPrefix = prefix }
}

// WithOnReject installs a hook for rejected lines. Panics on nil.
func WithOnReject(fn func(line string, reason error)) Option {
	if fn == nil {
		panic("wordlist: WithOnReject(nil)")
	}
	return func(o *Options) { o.OnReject = fn }
}

// Result is the filtered word list plus ingestion counters.
type Result struct {
	// Words are the accepted words in input order.
	Words []letters.Word

	// Lines is the number of lines read, blank and comment lines included.
	Lines int

	// Rejected counts non-blank lines that are not valid five-letter words.
	Rejected int

	// Duplicates counts valid words dropped because they were already seen.
	Duplicates int
}

// Texts returns the accepted words as plain strings.
func (r *Result) Texts() []string {
	out := make([]string, len(r.Words))
	for i, w := range r.Words {
		out[i] = w.Text
	}

	return out
}

// Read scans r line by line and returns the accepted words.
func Read(r io.Reader, opts ...Option) (*Result, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{}
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		res.Lines++

		// 1. Normalize the line.
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if o.CommentPrefix != "" && strings.HasPrefix(line, o.CommentPrefix) {
			continue
		}
		if o.FoldCase {
			line = strings.ToLower(line)
		}

		// 2. Validate.
		w, err := letters.NewWord(line)
		if err != nil {
			res.Rejected++
			if o.OnReject != nil {
				o.OnReject(line, err)
			}
			continue
		}

		// 3. Drop exact duplicates.
		if _, dup := seen[w.Text]; dup {
			res.Duplicates++
			continue
		}
		seen[w.Text] = struct{}{}
		res.Words = append(res.Words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}

	return res, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: open %q: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}
