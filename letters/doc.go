// Package letters models five-letter words over the lowercase Latin alphabet
// and the letter sets that decide whether two words can share a quintet.
//
// What:
//
//   - LetterSet: a 26-bit mask, bit (c-'a') set iff letter c occurs.
//   - Word: immutable {Text, Letters} pair; Letters is computed once by NewWord.
//   - Frequency: per-letter count of words containing that letter.
//
// Why:
//
//   - Two words are compatible iff their letter sets are disjoint, which on a
//     mask is a single AND. The graph builder never re-derives letter sets.
//
// Complexity:
//
//   - NewWord:      O(1) (five runes).
//   - Disjoint:     O(1).
//   - Frequencies:  O(W) for W words.
//
// Errors:
//
//   - ErrWordLength        text is not exactly WordLength bytes.
//   - ErrLetterOutOfRange  a character is outside 'a'..'z'.
//   - ErrRepeatedLetter    a letter occurs more than once.
package letters
