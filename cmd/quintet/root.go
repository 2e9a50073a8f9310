package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/quintet/config"
	"github.com/katalvlaran/quintet/wordgraph"
	"github.com/katalvlaran/quintet/wordlist"
)

// errNoWordList is returned when neither an argument nor the config names a word list.
var errNoWordList = errors.New("no word list: pass a path or set `words` in --config")

// app carries the resolved configuration and logger shared by subcommands.
type app struct {
	cfgPath string
	cfg     config.Config
	logger  *zap.Logger
}

// newRootCmd assembles the command tree. Each call returns independent flag state.
func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "quintet",
		Short: "Find five words with twenty-five distinct letters",
		Long: `quintet reads a dictionary, keeps the five-letter words without repeated
letters, links every pair of words that share no letter, and enumerates the
5-cliques of that graph: five words, twenty-five distinct letters.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log encoding: auto, console, json")
	pf.Bool("fold-case", false, "lowercase dictionary lines before filtering")

	root.AddCommand(newFindCmd(a), newFirstCmd(a), newStatsCmd(a))

	return root
}

// init loads the config file, applies flag overrides, validates, and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	// 1. File, if any, on top of defaults.
	if a.cfgPath != "" {
		cfg, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	// 2. Explicit flags win over the file.
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		a.cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		a.cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("fold-case") {
		a.cfg.FoldCase, _ = flags.GetBool("fold-case")
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		a.cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Lookup("out") != nil && flags.Changed("out") {
		a.cfg.Output.Path, _ = flags.GetString("out")
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		a.cfg.Output.Format, _ = flags.GetString("format")
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	// 3. Logger.
	logger, err := newLogger(a.cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// newLogger builds a production zap logger; "auto" picks the console encoder
// when stderr is a terminal and JSON otherwise.
func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	encoding := lc.Format
	if encoding == "auto" {
		encoding = "json"
		if fd := os.Stderr.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			encoding = "console"
		}
	}
	zc.Encoding = encoding
	if encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return zc.Build()
}

// loadGraph reads the word list named by args or the config and builds its graph.
func (a *app) loadGraph(args []string) (*wordlist.Result, *wordgraph.Graph, error) {
	path := a.cfg.Words
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, nil, errNoWordList
	}

	var opts []wordlist.Option
	if a.cfg.FoldCase {
		opts = append(opts, wordlist.WithFoldCase())
	}
	words, err := wordlist.ReadFile(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("word list loaded",
		zap.String("path", path),
		zap.Int("lines", words.Lines),
		zap.Int("accepted", len(words.Words)),
		zap.Int("rejected", words.Rejected),
		zap.Int("duplicates", words.Duplicates),
	)

	rows := a.progress("graph", len(words.Words))
	g, err := wordgraph.Build(words.Words, wordgraph.WithOnRow(func(i int) { rows(i+1, len(words.Words)) }))
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("graph built", zap.Int("vertices", g.Order()), zap.Int("edges", g.EdgeCount()))

	return words, g, nil
}

// progress returns a reporter that logs "<stage> progress" at most every 5% of total.
func (a *app) progress(stage string, total int) func(done, total int) {
	step := total / 20
	if step < 1 {
		step = 1
	}
	msg := stage + " progress"

	return func(done, total int) {
		if done%step != 0 && done != total {
			return
		}
		a.logger.Info(msg,
			zap.Int("done", done),
			zap.Int("total", total),
			zap.Float64("percent", 100*float64(done)/float64(total)),
		)
	}
}
