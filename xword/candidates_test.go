package xword

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/njcad/crossword/grid"
)

// TestFirstCandidates checks central seeding: both orientations, word
// centered, and a seed-stable preference order.
func TestFirstCandidates(t *testing.T) {
	t.Parallel()

	g, err := grid.New(7)
	require.NoError(t, err)
	w := Word{Index: 0, Text: "cat", Letters: []rune("cat")}

	cs := firstCandidates(g, w, rngFromSeed(42))
	require.Equal(t, 2, cs.remaining())

	p1, ok := cs.next()
	require.True(t, ok)
	p2, ok := cs.next()
	require.True(t, ok)
	_, ok = cs.next()
	require.False(t, ok)

	require.NotEqual(t, p1.Dir, p2.Dir)
	for _, p := range []grid.Placement{p1, p2} {
		require.NoError(t, g.CanPlace(p))
		if p.Dir == grid.Horizontal {
			require.Equal(t, 3, p.Row) // mid row of a 7-grid
			require.Equal(t, 2, p.Col) // (7-3)/2
		} else {
			require.Equal(t, 2, p.Row)
			require.Equal(t, 3, p.Col)
		}
	}

	// Same seed ⇒ same order.
	again := firstCandidates(g, w, rngFromSeed(42))
	q1, _ := again.next()
	require.Equal(t, p1, q1)
}

// TestCrossingCandidates_Perpendicular verifies candidates only run
// perpendicular to the word they cross.
func TestCrossingCandidates_Perpendicular(t *testing.T) {
	t.Parallel()

	g, err := grid.New(9)
	require.NoError(t, err)
	require.NoError(t, g.Commit(grid.Placement{Index: 0, Word: "stream", Row: 4, Col: 1, Dir: grid.Horizontal}))

	w := Word{Index: 1, Text: "tame", Letters: []rune("tame")}
	cs := crossingCandidates(g, w)
	require.Positive(t, cs.remaining())

	for p, ok := cs.next(); ok; p, ok = cs.next() {
		require.Equal(t, grid.Vertical, p.Dir, "candidate %+v must cross perpendicular", p)
		require.True(t, legal(g, p))
	}
}

// TestCrossingCandidates_ScoreOrder checks the density-first preference:
// a double-crossing candidate precedes single-crossing ones.
func TestCrossingCandidates_ScoreOrder(t *testing.T) {
	t.Parallel()

	g, err := grid.New(9)
	require.NoError(t, err)
	// Vertical "tame" (col 2) and "mesa" (col 4), rows 2-5. Row 2 reads
	// t.m across cols 2-4, so "tom" can cross both at once.
	require.NoError(t, g.Commit(grid.Placement{Index: 0, Word: "tame", Row: 2, Col: 2, Dir: grid.Vertical}))
	require.NoError(t, g.Commit(grid.Placement{Index: 1, Word: "mesa", Row: 2, Col: 4, Dir: grid.Vertical}))

	w := Word{Index: 2, Text: "tom", Letters: []rune("tom")}
	cs := crossingCandidates(g, w)
	require.Positive(t, cs.remaining())

	first, ok := cs.next()
	require.True(t, ok)
	score, legalOK := legalWithScore(g, first)
	require.True(t, legalOK)
	require.Equal(t, 2, score)
}

// TestCandidateSet_Restartable exercises the rewind contract: after a
// rewind the sequence replays identically from the start.
func TestCandidateSet_Restartable(t *testing.T) {
	t.Parallel()

	g, err := grid.New(9)
	require.NoError(t, err)
	require.NoError(t, g.Commit(grid.Placement{Index: 0, Word: "stream", Row: 4, Col: 1, Dir: grid.Horizontal}))

	cs := crossingCandidates(g, Word{Index: 1, Text: "mesa", Letters: []rune("mesa")})
	var firstPass []grid.Placement
	for p, ok := cs.next(); ok; p, ok = cs.next() {
		firstPass = append(firstPass, p)
	}
	require.NotEmpty(t, firstPass)
	require.Zero(t, cs.remaining())

	cs.rewind()
	require.Equal(t, len(firstPass), cs.remaining())
	for i := range firstPass {
		p, ok := cs.next()
		require.True(t, ok)
		require.Equal(t, firstPass[i], p)
	}
}

// TestCrossingCandidates_NoneForDisjoint yields an empty set when the
// word shares no letter with the grid.
func TestCrossingCandidates_NoneForDisjoint(t *testing.T) {
	t.Parallel()

	g, err := grid.New(7)
	require.NoError(t, err)
	require.NoError(t, g.Commit(grid.Placement{Index: 0, Word: "zxq", Row: 3, Col: 2, Dir: grid.Horizontal}))

	cs := crossingCandidates(g, Word{Index: 1, Text: "wvy", Letters: []rune("wvy")})
	require.Zero(t, cs.remaining())
	_, ok := cs.next()
	require.False(t, ok)
}

// TestCrossingCandidates_Dedup ensures repeated letters aligning to the
// same start cell yield a single candidate.
func TestCrossingCandidates_Dedup(t *testing.T) {
	t.Parallel()

	g, err := grid.New(9)
	require.NoError(t, err)
	// Two vertical words with an 'a' on the same row, two columns apart:
	// "mast" col 2 and "pant" col 4, rows 2-5, both 'a' on row 3. "ava"
	// aligns to the identical (row 3, col 2, H) start through either 'a'.
	require.NoError(t, g.Commit(grid.Placement{Index: 0, Word: "mast", Row: 2, Col: 2, Dir: grid.Vertical}))
	require.NoError(t, g.Commit(grid.Placement{Index: 1, Word: "pant", Row: 2, Col: 4, Dir: grid.Vertical}))

	cs := crossingCandidates(g, Word{Index: 2, Text: "ava", Letters: []rune("ava")})
	seen := make(map[grid.Placement]int)
	for p, ok := cs.next(); ok; p, ok = cs.next() {
		seen[p]++
		require.Equal(t, 1, seen[p], "duplicate candidate %+v", p)
	}
	require.Contains(t, seen, grid.Placement{Index: 2, Word: "ava", Row: 3, Col: 2, Dir: grid.Horizontal})
}
