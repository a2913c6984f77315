package xword

import (
	"math/rand"
	"sort"

	"github.com/njcad/crossword/grid"
)

// candidate pairs a proposed placement with its crossing count.
type candidate struct {
	p     grid.Placement
	score int
}

// candidateSet is a finite, restartable candidate sequence for one word
// against one grid state. The engine consumes it with next and may
// rewind it after re-entering the word from a backtrack that rebuilt
// the same grid state.
type candidateSet struct {
	cands  []candidate
	cursor int
}

// next yields the following untried candidate, or ok=false when the
// sequence is exhausted.
func (s *candidateSet) next() (p grid.Placement, ok bool) {
	if s.cursor >= len(s.cands) {
		return grid.Placement{}, false
	}
	p = s.cands[s.cursor].p
	s.cursor++

	return p, true
}

// rewind restarts the sequence from its first candidate.
func (s *candidateSet) rewind() { s.cursor = 0 }

// remaining reports how many candidates are still untried.
func (s *candidateSet) remaining() int { return len(s.cands) - s.cursor }

// firstCandidates seeds an empty grid: the word centered in each
// orientation. There is nothing to intersect yet, so the set is tiny
// and deterministic; the seeded rng only decides which orientation is
// tried first.
//
// Complexity: O(1).
func firstCandidates(g *grid.Grid, w Word, rng *rand.Rand) *candidateSet {
	var (
		mid   = g.Size() / 2
		start = (g.Size() - w.Len()) / 2
	)
	h := candidate{p: grid.Placement{Index: w.Index, Word: w.Text, Row: mid, Col: start, Dir: grid.Horizontal}}
	v := candidate{p: grid.Placement{Index: w.Index, Word: w.Text, Row: start, Col: mid, Dir: grid.Vertical}}

	cands := []candidate{h, v}
	if rng.Intn(2) == 1 {
		cands[0], cands[1] = cands[1], cands[0]
	}

	return &candidateSet{cands: cands}
}

// crossingCandidates enumerates legal placements of w that intersect
// existing content: for every letter of w matching an occupied cell, the
// word is aligned through that cell perpendicular to the word(s) already
// covering it. Illegal candidates are pruned here via the shared
// legality predicate; survivors are ordered by crossing count descending
// (density first), then row, column and direction ascending - a fully
// deterministic preference order.
//
// Complexity: O(L·N²) scan + O(k log k) sort for k survivors.
func crossingCandidates(g *grid.Grid, w Word) *candidateSet {
	var (
		cands []candidate
		seen  = make(map[grid.Placement]struct{})
		size  = g.Size()
	)

	consider := func(p grid.Placement) {
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		if sc, ok := legalWithScore(g, p); ok {
			cands = append(cands, candidate{p: p, score: sc})
		}
	}

	for i, ch := range w.Letters {
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				got, occupied := g.Letter(r, c)
				if !occupied || got != ch {
					continue
				}
				// Cross perpendicular to whatever runs through (r,c):
				// a cell already covered in the candidate's direction
				// would make the words collinear, not crossing.
				if !g.DirectionAt(r, c, grid.Horizontal) {
					consider(grid.Placement{Index: w.Index, Word: w.Text, Row: r, Col: c - i, Dir: grid.Horizontal})
				}
				if !g.DirectionAt(r, c, grid.Vertical) {
					consider(grid.Placement{Index: w.Index, Word: w.Text, Row: r - i, Col: c, Dir: grid.Vertical})
				}
			}
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.p.Row != b.p.Row {
			return a.p.Row < b.p.Row
		}
		if a.p.Col != b.p.Col {
			return a.p.Col < b.p.Col
		}

		return a.p.Dir < b.p.Dir
	})

	return &candidateSet{cands: cands}
}
