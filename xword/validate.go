package xword

import "github.com/njcad/crossword/grid"

// legalWithScore is the single legality predicate for a candidate
// placement, shared by generator pruning and the engine's commit check.
// It also counts crossings (existing same-letter cells the candidate
// covers) so the generator can prefer denser placements.
//
// A candidate is rejected when:
//   - its span leaves the grid;
//   - the cell immediately before its start or after its end is occupied
//     (the word would silently extend an existing one);
//   - a covered cell holds a different letter;
//   - a freshly-written cell (no crossing there) has an occupied side
//     neighbor perpendicular to the word — that is a parallel word
//     touching flank to flank without a real crossing.
//
// Crossing cells are exempt from the flank rule: their neighbors belong
// to the perpendicular word being crossed.
//
// Complexity: O(L) for a word of L letters.
func legalWithScore(g *grid.Grid, p grid.Placement) (score int, ok bool) {
	letters := []rune(p.Word)
	last := len(letters) - 1

	endR, endC := p.CellAt(last)
	if !g.InBounds(p.Row, p.Col) || !g.InBounds(endR, endC) {
		return 0, false
	}

	// No false extension: the span must be delimited by empty cells or
	// the grid edge on both ends.
	if p.Dir == grid.Horizontal {
		if g.Occupied(p.Row, p.Col-1) || g.Occupied(p.Row, p.Col+len(letters)) {
			return 0, false
		}
	} else {
		if g.Occupied(p.Row-1, p.Col) || g.Occupied(p.Row+len(letters), p.Col) {
			return 0, false
		}
	}

	var r, c int
	for i, ch := range letters {
		r, c = p.CellAt(i)
		if got, occupied := g.Letter(r, c); occupied {
			if got != ch {
				return 0, false
			}
			score++

			continue
		}
		// Fresh cell: both perpendicular flanks must be empty.
		if p.Dir == grid.Horizontal {
			if g.Occupied(r-1, c) || g.Occupied(r+1, c) {
				return 0, false
			}
		} else {
			if g.Occupied(r, c-1) || g.Occupied(r, c+1) {
				return 0, false
			}
		}
	}

	return score, true
}

// legal reports plain legality without the crossing count.
func legal(g *grid.Grid, p grid.Placement) bool {
	_, ok := legalWithScore(g, p)

	return ok
}
