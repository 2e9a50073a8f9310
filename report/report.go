// Package report writes search results and letter statistics as delimited
// text (TSV, CSV) or YAML.
//
// Delimited output has a header row; each clique is one row of its five words
// in index order followed by the clique's 25 letters sorted. YAML output is a
// sequence of {words, letters} mappings.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quintet/clique"
	"github.com/katalvlaran/quintet/letters"
)

// Format selects the output encoding.
type Format string

const (
	// TSV is tab-separated values with a header row.
	TSV Format = "tsv"
	// CSV is comma-separated values with a header row.
	CSV Format = "csv"
	// YAML is a YAML sequence document.
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format name other than tsv, csv or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case TSV, CSV, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// cliqueDoc is the YAML shape of one clique.
type cliqueDoc struct {
	Words   []string `yaml:"words"`
	Letters string   `yaml:"letters"`
}

// letterDoc is the YAML shape of one frequency entry.
type letterDoc struct {
	Letter string `yaml:"letter"`
	Count  int    `yaml:"count"`
}

// WriteCliques encodes cliques to w in format f.
func WriteCliques(w io.Writer, cliques []clique.Clique, f Format) error {
	switch f {
	case TSV, CSV:
		header := []string{"word1", "word2", "word3", "word4", "word5", "letters"}
		rows := make([][]string, 0, len(cliques))
		for _, c := range cliques {
			row := make([]string, 0, clique.Size+1)
			row = append(row, c.Words[:]...)
			rows = append(rows, append(row, c.Letters()))
		}
		return writeDelimited(w, f, header, rows)
	case YAML:
		docs := make([]cliqueDoc, 0, len(cliques))
		for _, c := range cliques {
			docs = append(docs, cliqueDoc{Words: append([]string(nil), c.Words[:]...), Letters: c.Letters()})
		}
		return writeYAML(w, docs)
	default:
		return fmt.Errorf("report: WriteCliques: %w: %q", ErrUnknownFormat, f)
	}
}

// WriteFrequencies encodes the letters that occur at least once, in
// alphabetical order, with their counts.
func WriteFrequencies(w io.Writer, freq letters.Frequency, f Format) error {
	entries := freq.Sorted()
	switch f {
	case TSV, CSV:
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{string(e.Letter), strconv.Itoa(e.Count)})
		}
		return writeDelimited(w, f, []string{"letter", "count"}, rows)
	case YAML:
		docs := make([]letterDoc, 0, len(entries))
		for _, e := range entries {
			docs = append(docs, letterDoc{Letter: string(e.Letter), Count: e.Count})
		}
		return writeYAML(w, docs)
	default:
		return fmt.Errorf("report: WriteFrequencies: %w: %q", ErrUnknownFormat, f)
	}
}

func writeDelimited(w io.Writer, f Format, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if f == TSV {
		cw.Comma = '\t'
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("report: write rows: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}
