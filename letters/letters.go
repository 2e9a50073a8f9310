package letters

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

const (
	// WordLength is the number of letters in every accepted word.
	WordLength = 5

	// AlphabetSize is the number of letters in 'a'..'z'.
	AlphabetSize = 26
)

// Sentinel errors returned by NewWord. Use errors.Is to branch on them.
var (
	// ErrWordLength indicates the text is not exactly WordLength characters.
	ErrWordLength = errors.New("letters: word must have exactly 5 letters")

	// ErrLetterOutOfRange indicates a character outside 'a'..'z'.
	ErrLetterOutOfRange = errors.New("letters: character outside a..z")

	// ErrRepeatedLetter indicates a letter occurs more than once in the word.
	ErrRepeatedLetter = errors.New("letters: repeated letter")
)

// LetterSet is a bitmask over 'a'..'z'; bit (c-'a') is set iff c is present.
type LetterSet uint32

// Of returns the letter set of text. Runes outside 'a'..'z' are ignored.
// Complexity: O(len(text)).
func Of(text string) LetterSet {
	var s LetterSet
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' {
			s |= 1 << (c - 'a')
		}
	}

	return s
}

// Len returns the number of letters in s.
func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Has reports whether letter r is in s. Runes outside 'a'..'z' are never present.
func (s LetterSet) Has(r rune) bool {
	if r < 'a' || r > 'z' {
		return false
	}

	return s&(1<<(r-'a')) != 0
}

// Disjoint reports whether s and o share no letter.
func (s LetterSet) Disjoint(o LetterSet) bool {
	return s&o == 0
}

// Union returns the letters present in s or o.
func (s LetterSet) Union(o LetterSet) LetterSet {
	return s | o
}

// String returns the letters of s in alphabetical order, e.g. "abcde".
func (s LetterSet) String() string {
	var sb strings.Builder
	sb.Grow(s.Len())
	for m := uint32(s); m != 0; m &= m - 1 {
		sb.WriteByte(byte('a' + bits.TrailingZeros32(m)))
	}

	return sb.String()
}

// Word is a validated five-letter word together with its letter set.
// The zero Word is not valid; build Words with NewWord.
type Word struct {
	// Text is the word itself, e.g. "fjord".
	Text string

	// Letters is the letter set of Text, computed once at construction.
	Letters LetterSet
}

// NewWord validates text and returns the corresponding Word.
// text must be exactly WordLength lowercase letters a..z with no repeats.
// Complexity: O(1).
func NewWord(text string) (Word, error) {
	// 1. Length is checked in bytes; any multi-byte rune fails the range check below.
	if len(text) != WordLength {
		return Word{}, fmt.Errorf("%w: %q", ErrWordLength, text)
	}

	// 2. Accumulate the mask, rejecting foreign characters and repeats.
	var s LetterSet
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 'a' || c > 'z' {
			return Word{}, fmt.Errorf("%w: %q", ErrLetterOutOfRange, text)
		}
		bit := LetterSet(1) << (c - 'a')
		if s&bit != 0 {
			return Word{}, fmt.Errorf("%w: %q has %q twice", ErrRepeatedLetter, text, c)
		}
		s |= bit
	}

	return Word{Text: text, Letters: s}, nil
}

// Valid reports whether w satisfies the invariants NewWord establishes.
func (w Word) Valid() bool {
	return len(w.Text) == WordLength && w.Letters.Len() == WordLength && Of(w.Text) == w.Letters
}
