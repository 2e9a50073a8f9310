// Command quintet finds sets of five five-letter words that together use
// twenty-five distinct letters.
//
// Usage:
//
//	quintet find  [wordlist] [--workers N] [--out FILE] [--format tsv|csv|yaml]
//	quintet first [wordlist]
//	quintet stats [wordlist] [--format tsv|csv|yaml]
//
// The word list path may also come from the `words` key of a YAML file passed
// with --config. Flags override the file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
