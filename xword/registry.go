package xword

import "sort"

// newWords validates the raw input list and wraps each token as a Word.
// Identity is the input index; duplicates stay distinct. Case/charset
// normalization is the caller's responsibility and is not re-checked here.
//
// Errors: ErrEmptyWordList for an empty list, ErrEmptyWord for any
// zero-letter token.
//
// Complexity: O(total input length).
func newWords(texts []string) ([]Word, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyWordList
	}
	words := make([]Word, len(texts))
	for i, txt := range texts {
		letters := []rune(txt)
		if len(letters) == 0 {
			return nil, ErrEmptyWord
		}
		words[i] = Word{Index: i, Text: txt, Letters: letters}
	}

	return words, nil
}

// orderWords returns a fresh slice ordered for early constraint
// propagation: longest words first (more intersection opportunities),
// ties broken by distinct-letter richness, then original input index.
// The ordering is rng-free and therefore identical on every call for
// the same input.
//
// Complexity: O(n log n) comparisons.
func orderWords(words []Word) []Word {
	ordered := make([]Word, len(words))
	copy(ordered, words)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Len() != b.Len() {
			return a.Len() > b.Len()
		}
		if ra, rb := a.richness(), b.richness(); ra != rb {
			return ra > rb
		}

		return a.Index < b.Index
	})

	return ordered
}
