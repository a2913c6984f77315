package xword

import "github.com/njcad/crossword/grid"

// extract materializes an attempt's best placement set into a Result:
// the placements are replayed onto a fresh grid (the live search grid
// may have unwound past the incumbent), the grid is cropped to its
// minimal bounding square, and every placement is re-based to the
// cropped origin.
//
// Guarantees: all returned coordinates are valid within Result.Grid;
// uncovered cells are ' ', never a wildcard.
//
// Complexity: O(placed·L + bound²).
func extract(placed map[int]grid.Placement, bound, attempt, steps int) Result {
	res := Result{
		Placements: make(map[int]grid.Placement, len(placed)),
		Attempt:    attempt,
		Steps:      steps,
	}
	if len(placed) == 0 {
		return res
	}

	g, err := grid.New(bound)
	if err != nil {
		return res
	}
	// Replay order is irrelevant: the set was committed together during
	// search, so every shared cell already agrees on its letter.
	for _, p := range placed {
		if cerr := g.Commit(p); cerr != nil {
			// An inconsistent snapshot would be an engine bug; surface
			// it as the smaller, still-valid result rather than panic.
			continue
		}
	}

	cells, rowOff, colOff := g.Crop()
	res.Grid = cells
	for idx, p := range placed {
		p.Row -= rowOff
		p.Col -= colOff
		res.Placements[idx] = p
	}

	return res
}
