// Package xword - core types and sentinel errors for the placement engine.
package xword

import (
	"errors"

	"github.com/njcad/crossword/grid"
)

// Sentinel errors for Generate input contracts and option constructors.
var (
	// ErrEmptyWordList indicates Generate received no words at all.
	ErrEmptyWordList = errors.New("xword: word list must not be empty")
	// ErrEmptyWord indicates a word with zero letters in the input list.
	ErrEmptyWord = errors.New("xword: words must not be empty")
	// ErrBadMaxSteps indicates a non-positive step budget.
	ErrBadMaxSteps = errors.New("xword: max steps must be positive")
	// ErrBadTimeLimit indicates a negative wall-clock budget.
	ErrBadTimeLimit = errors.New("xword: time limit must not be negative")
	// ErrBadAttempts indicates a non-positive attempt count.
	ErrBadAttempts = errors.New("xword: attempts must be positive")
	// ErrBadParallelism indicates a non-positive parallelism degree.
	ErrBadParallelism = errors.New("xword: parallelism must be positive")
)

// Word is one normalized input token: immutable text, its letters, and
// its identity — the index in the original input list. Duplicate texts
// are distinct Words with distinct indices.
type Word struct {
	Index   int
	Text    string
	Letters []rune
}

// Len returns the number of letters.
func (w Word) Len() int { return len(w.Letters) }

// richness counts distinct letters; richer words cross more easily and
// win ordering ties against equal-length peers.
func (w Word) richness() int {
	var seen [256]bool
	var n int
	for _, ch := range w.Letters {
		if ch < 256 {
			if !seen[ch] {
				seen[ch] = true
				n++
			}
			continue
		}
		n++ // non-Latin letters counted individually; exactness is not required for a tie-break
	}

	return n
}

// Result is the outcome of Generate.
//
// Grid is the cropped minimal bounding square ([][]rune, ' ' for empty
// cells); nil when nothing was placed. Placements maps original word
// indices to their final, re-based placements; fewer entries than input
// words signals a partial solution. Attempt is the index of the winning
// attempt and Steps the search steps it consumed.
type Result struct {
	Grid       [][]rune
	Placements map[int]grid.Placement
	Attempt    int
	Steps      int
}

// Placed returns the number of words committed to the grid.
func (r Result) Placed() int { return len(r.Placements) }

// blanks counts empty cells of the cropped grid; the attempt selector
// prefers fewer (denser crosswords), mirroring the density objective.
func (r Result) blanks() int {
	var n int
	for _, row := range r.Grid {
		for _, ch := range row {
			if ch == ' ' {
				n++
			}
		}
	}

	return n
}
