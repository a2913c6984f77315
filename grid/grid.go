package grid

import "strings"

// Grid is a square cell store mutated exclusively through Commit and
// Undo. It is not safe for concurrent use; each search attempt must own
// its own instance.
type Grid struct {
	size  int
	cells [][]cell
}

// New constructs an empty size×size Grid.
// Returns ErrGridSize when size < 1.
// Complexity: O(size²) time and memory.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, ErrGridSize
	}
	cells := make([][]cell, size)
	for r := 0; r < size; r++ {
		cells[r] = make([]cell, size)
	}

	return &Grid{size: size, cells: cells}, nil
}

// Size returns the side length of the grid.
// Complexity: O(1).
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.size && c >= 0 && c < g.size
}

// Letter returns the letter at (r,c) and whether the cell is occupied.
// Out-of-bounds cells report (0,false).
// Complexity: O(1).
func (g *Grid) Letter(r, c int) (rune, bool) {
	if !g.InBounds(r, c) {
		return 0, false
	}
	ch := g.cells[r][c].letter

	return ch, ch != 0
}

// Empty reports whether (r,c) is in bounds and holds no letter.
// Complexity: O(1).
func (g *Grid) Empty(r, c int) bool {
	return g.InBounds(r, c) && g.cells[r][c].letter == 0
}

// Occupied reports whether (r,c) is in bounds and holds a letter.
// Off-grid positions count as unoccupied, which is what boundary checks
// in the legality rules rely on.
// Complexity: O(1).
func (g *Grid) Occupied(r, c int) bool {
	return g.InBounds(r, c) && g.cells[r][c].letter != 0
}

// DirectionAt reports whether a committed word running in direction d
// covers cell (r,c). Candidate generation uses this to align new words
// perpendicular to the crossing word at a shared cell.
// Complexity: O(1).
func (g *Grid) DirectionAt(r, c int, d Direction) bool {
	return g.InBounds(r, c) && g.cells[r][c].dirs[d] > 0
}

// CanPlace is the pure boundary + letter-collision pre-check for a
// candidate placement. It never mutates the grid. Adjacency legality is
// the validator's concern, not CanPlace's.
// Returns ErrOutOfBounds or ErrCellConflict; nil when placeable.
// Complexity: O(L) for a word of L letters.
func (g *Grid) CanPlace(p Placement) error {
	var (
		letters = []rune(p.Word)
		r, c    int
	)
	for i, ch := range letters {
		r, c = p.CellAt(i)
		if !g.InBounds(r, c) {
			return ErrOutOfBounds
		}
		if got := g.cells[r][c].letter; got != 0 && got != ch {
			return ErrCellConflict
		}
	}

	return nil
}

// Commit writes the placement onto the grid: letters, owner indices and
// direction counts. The write is all-or-nothing; a failing pre-check
// leaves the grid untouched.
// Complexity: O(L).
func (g *Grid) Commit(p Placement) error {
	if err := g.CanPlace(p); err != nil {
		return err
	}
	var r, c int
	for i, ch := range []rune(p.Word) {
		r, c = p.CellAt(i)
		cl := &g.cells[r][c]
		cl.letter = ch
		cl.owners = append(cl.owners, p.Index)
		cl.dirs[p.Dir]++
	}

	return nil
}

// Undo is the exact inverse of Commit. It removes this word's ownership
// from every covered cell; a cell reverts to empty only when its owner
// list drains, so letters shared with a crossing word survive.
// Returns ErrNotCommitted when some covered cell does not list p.Index.
// Complexity: O(L).
func (g *Grid) Undo(p Placement) error {
	var (
		letters = []rune(p.Word)
		r, c    int
	)
	// Verify ownership first so a bad Undo cannot half-strip the grid.
	for i := range letters {
		r, c = p.CellAt(i)
		if !g.InBounds(r, c) || !ownedBy(g.cells[r][c].owners, p.Index) {
			return ErrNotCommitted
		}
	}
	for i := range letters {
		r, c = p.CellAt(i)
		cl := &g.cells[r][c]
		cl.owners = removeOwner(cl.owners, p.Index)
		cl.dirs[p.Dir]--
		if len(cl.owners) == 0 {
			cl.letter = 0
		}
	}

	return nil
}

// Blanks counts empty cells; fewer blanks means a denser crossword.
// Complexity: O(N²).
func (g *Grid) Blanks() int {
	var n int
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].letter == 0 {
				n++
			}
		}
	}

	return n
}

// Crop returns the minimal bounding square covering all placed letters
// (side = the larger of the bounding box's height and width), plus the
// row/column offsets to re-base placement coordinates into it. Empty
// cells are ' '. An untouched grid crops to (nil, 0, 0).
// Complexity: O(N²).
func (g *Grid) Crop() (cells [][]rune, rowOff, colOff int) {
	minR, minC := g.size, g.size
	maxR, maxC := -1, -1
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c].letter == 0 {
				continue
			}
			if r < minR {
				minR = r
			}
			if r > maxR {
				maxR = r
			}
			if c < minC {
				minC = c
			}
			if c > maxC {
				maxC = c
			}
		}
	}
	if maxR < 0 {
		return nil, 0, 0
	}

	side := maxR - minR + 1
	if w := maxC - minC + 1; w > side {
		side = w
	}
	cells = make([][]rune, side)
	for r := 0; r < side; r++ {
		cells[r] = make([]rune, side)
		for c := 0; c < side; c++ {
			cells[r][c] = ' '
			if g.InBounds(minR+r, minC+c) && g.cells[minR+r][minC+c].letter != 0 {
				cells[r][c] = g.cells[minR+r][minC+c].letter
			}
		}
	}

	return cells, minR, minC
}

// Repr renders the grid as newline-joined rows with ' ' for empty cells.
// Complexity: O(N²).
func (g *Grid) Repr() string {
	rows := make([]string, g.size)
	line := make([]rune, g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			line[c] = ' '
			if g.cells[r][c].letter != 0 {
				line[c] = g.cells[r][c].letter
			}
		}
		rows[r] = string(line)
	}

	return strings.Join(rows, "\n")
}

// ownedBy reports whether owners contains idx.
func ownedBy(owners []int, idx int) bool {
	for _, o := range owners {
		if o == idx {
			return true
		}
	}

	return false
}

// removeOwner deletes one occurrence of idx from owners, preserving
// order (duplicate input words are distinct entities with equal text
// but distinct indices, so exactly one occurrence goes).
func removeOwner(owners []int, idx int) []int {
	for i, o := range owners {
		if o == idx {
			return append(owners[:i], owners[i+1:]...)
		}
	}

	return owners
}
