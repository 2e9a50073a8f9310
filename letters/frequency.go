package letters

import "sort"

// Frequency counts, per letter, how many words contain it.
// Index 0 is 'a', index 25 is 'z'.
type Frequency [AlphabetSize]int

// LetterCount pairs a letter with its count.
type LetterCount struct {
	Letter rune
	Count  int
}

// Frequencies tallies the letter sets of words.
// Complexity: O(W) for W words.
func Frequencies(words []Word) Frequency {
	var f Frequency
	for _, w := range words {
		for i := 0; i < AlphabetSize; i++ {
			if w.Letters&(1<<i) != 0 {
				f[i]++
			}
		}
	}

	return f
}

// Of returns the count for letter r, or 0 if r is outside 'a'..'z'.
func (f Frequency) Of(r rune) int {
	if r < 'a' || r > 'z' {
		return 0
	}

	return f[r-'a']
}

// Sorted returns the letters that occur at least once, in alphabetical order.
func (f Frequency) Sorted() []LetterCount {
	out := make([]LetterCount, 0, AlphabetSize)
	for i, n := range f {
		if n > 0 {
			out = append(out, LetterCount{Letter: rune('a' + i), Count: n})
		}
	}

	return out
}

// ByCount returns the same entries as Sorted, ordered by descending count.
// Ties keep alphabetical order.
func (f Frequency) ByCount() []LetterCount {
	out := f.Sorted()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out
}
