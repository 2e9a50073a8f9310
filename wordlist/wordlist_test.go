package wordlist_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quintet/letters"
	"github.com/katalvlaran/quintet/wordlist"
)

const sample = `fjord
  gucks
nymph

geese
vibex
waltz
toolong
fjord
Crwth
`

func TestRead_FiltersAndDedups(t *testing.T) {
	res, err := wordlist.Read(strings.NewReader(sample))
	require.NoError(t, err)

	want := []string{"fjord", "gucks", "nymph", "vibex", "waltz"}
	if diff := cmp.Diff(want, res.Texts()); diff != "" {
		t.Errorf("accepted words mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 10, res.Lines)
	assert.Equal(t, 3, res.Rejected) // geese, toolong, Crwth
	assert.Equal(t, 1, res.Duplicates)
	for _, w := range res.Words {
		assert.True(t, w.Valid(), w.Text)
	}
}

func TestRead_FoldCaseAndComments(t *testing.T) {
	var rejected []string
	res, err := wordlist.Read(
		strings.NewReader("# header\nCRWTH\nFjord\nfjord\nqu!ck\n"),
		wordlist.WithFoldCase(),
		wordlist.WithCommentPrefix("#"),
		wordlist.WithOnReject(func(line string, reason error) {
			assert.True(t, errors.Is(reason, letters.ErrLetterOutOfRange))
			rejected = append(rejected, line)
		}),
	)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"crwth", "fjord"}, res.Texts()); diff != "" {
		t.Errorf("accepted words mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"qu!ck"}, rejected)
	assert.Equal(t, 1, res.Duplicates)
}

func TestRead_Empty(t *testing.T) {
	res, err := wordlist.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, res.Words)
	assert.Equal(t, 0, res.Lines)
}

func TestRead_NilReader(t *testing.T) {
	_, err := wordlist.Read(nil)
	assert.ErrorIs(t, err, wordlist.ErrReaderNil)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestRead_ScannerError(t *testing.T) {
	_, err := wordlist.Read(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	res, err := wordlist.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, res.Words, 5)

	_, err = wordlist.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithOnReject_NilPanics(t *testing.T) {
	assert.Panics(t, func() { wordlist.WithOnReject(nil) })
}
