package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quintet/config"
)

// dictionary holds exactly two quintets plus a repeated letter, a capital,
// a duplicate and an overlong line.
const dictionary = `fjord
gucks
nymph
vibex
waltz
abcde
fghij
klmno
pqrst
uvwxy
hello
Words
abcde
toolong
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()

	return out.String(), err
}

func TestFind_TSV(t *testing.T) {
	words := writeFile(t, "words.txt", dictionary)

	out, err := run(t, "find", words, "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header plus two quintets")
	assert.Equal(t, "word1\tword2\tword3\tword4\tword5\tletters", lines[0])
	assert.Equal(t, "abcde\tfghij\tklmno\tpqrst\tuvwxy\tabcdefghijklmnopqrstuvwxy", lines[1])
	assert.Equal(t, "fjord\tgucks\tnymph\tvibex\twaltz\tabcdefghijklmnoprstuvwxyz", lines[2])
}

func TestFind_OutFileAndFormat(t *testing.T) {
	words := writeFile(t, "words.txt", dictionary)
	dst := filepath.Join(t.TempDir(), "out.csv")

	out, err := run(t, "find", words, "--out", dst, "--format", "csv")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "word1,word2,word3,word4,word5,letters\n"))
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
}

func TestFind_WordsFromConfig(t *testing.T) {
	words := writeFile(t, "words.txt", dictionary)
	cfg := writeFile(t, "quintet.yaml", "words: "+words+"\nfold_case: true\noutput:\n  format: yaml\n")

	out, err := run(t, "find", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "- words:\n")
	assert.Equal(t, 2, strings.Count(out, "letters:"))
}

func TestFind_Errors(t *testing.T) {
	_, err := run(t, "find")
	assert.ErrorIs(t, err, errNoWordList)

	_, err = run(t, "find", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	words := writeFile(t, "words.txt", dictionary)
	_, err = run(t, "find", words, "--format", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "find", words, "--workers", "-3")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestFirst(t *testing.T) {
	words := writeFile(t, "words.txt", dictionary)

	out, err := run(t, "first", words)
	require.NoError(t, err)
	assert.Equal(t, "fjord gucks nymph vibex waltz\tabcdefghijklmnoprstuvwxyz\n", out)

	none := writeFile(t, "none.txt", "abcde\nfghij\n")
	out, err = run(t, "first", none)
	require.NoError(t, err)
	assert.Equal(t, "no quintet found\n", out)
}

func TestStats(t *testing.T) {
	words := writeFile(t, "words.txt", dictionary)

	out, err := run(t, "stats", words, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "lines\t14\n")
	assert.Contains(t, out, "accepted\t10\n")
	assert.Contains(t, out, "rejected\t3\n")
	assert.Contains(t, out, "duplicates\t1\n")
	assert.Contains(t, out, "vertices\t10\n")
	assert.Contains(t, out, "letter,count\n")
	assert.Contains(t, out, "a,2\n")
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"auto", "console", "json"} {
		l, err := newLogger(config.LogConfig{Level: "debug", Format: format})
		require.NoError(t, err, format)
		assert.NotNil(t, l)
	}
	_, err := newLogger(config.LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}
