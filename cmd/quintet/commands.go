package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/quintet/clique"
	"github.com/katalvlaran/quintet/letters"
	"github.com/katalvlaran/quintet/report"
)

func newFindCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [wordlist]",
		Short: "Enumerate every quintet in the word list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFind(cmd, args)
		},
	}
	cmd.Flags().IntP("workers", "w", 0, "parallel workers (0 = one per CPU)")
	cmd.Flags().StringP("out", "o", "", "result file (default stdout)")
	cmd.Flags().StringP("format", "f", "tsv", "output format: tsv, csv, yaml")

	return cmd
}

func (a *app) runFind(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	_, g, err := a.loadGraph(args)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	roots := a.progress("search", g.Order())
	start := time.Now()
	res, err := clique.FindAll(g,
		clique.WithContext(cmd.Context()),
		clique.WithWorkers(a.cfg.Workers),
		clique.WithLogger(a.logger),
		clique.WithOnRoot(func(done, total int) error {
			roots(done, total)
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	out, closeOut, err := a.output(cmd)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}
	if err = report.WriteCliques(out, res.Cliques, format); err != nil {
		_ = closeOut()
		return fmt.Errorf("find: %w", err)
	}
	if err = closeOut(); err != nil {
		return fmt.Errorf("find: %w", err)
	}

	a.logger.Info("quintets written",
		zap.Int("cliques", len(res.Cliques)),
		zap.Int("workers", res.Workers),
		zap.String("out", a.cfg.Output.Path),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// output opens the configured result file, or wraps cmd's stdout.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if a.cfg.Output.Path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(a.cfg.Output.Path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

func newFirstCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "first [wordlist]",
		Short: "Stop at the first quintet found",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.loadGraph(args)
			if err != nil {
				return fmt.Errorf("first: %w", err)
			}

			roots := a.progress("search", g.Order())
			c, ok, err := clique.FindFirst(g,
				clique.WithContext(cmd.Context()),
				clique.WithLogger(a.logger),
				clique.WithOnRoot(func(done, total int) error {
					roots(done, total)
					return nil
				}),
			)
			if err != nil {
				return fmt.Errorf("first: %w", err)
			}

			w := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(w, "no quintet found")
				return nil
			}
			fmt.Fprintf(w, "%s\t%s\n", strings.Join(c.Words[:], " "), c.Letters())

			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [wordlist]",
		Short: "Print word counts, graph size and letter frequencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return err
			}
			words, g, err := a.loadGraph(args)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "lines\t%d\n", words.Lines)
			fmt.Fprintf(w, "accepted\t%d\n", len(words.Words))
			fmt.Fprintf(w, "rejected\t%d\n", words.Rejected)
			fmt.Fprintf(w, "duplicates\t%d\n", words.Duplicates)
			fmt.Fprintf(w, "vertices\t%d\n", g.Order())
			fmt.Fprintf(w, "edges\t%d\n", g.EdgeCount())
			fmt.Fprintln(w)

			if err = report.WriteFrequencies(w, letters.Frequencies(words.Words), format); err != nil {
				return fmt.Errorf("stats: %w", err)
			}

			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "tsv", "frequency table format: tsv, csv, yaml")

	return cmd
}
