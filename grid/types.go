// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/njcad/crossword.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrGridSize indicates a requested side length below 1.
	ErrGridSize = errors.New("grid: side length must be at least one")
	// ErrOutOfBounds indicates a placement span leaving the grid boundary.
	ErrOutOfBounds = errors.New("grid: placement out of bounds")
	// ErrCellConflict indicates a covered cell already holding a different letter.
	ErrCellConflict = errors.New("grid: conflicting letter at cell")
	// ErrNotCommitted indicates an Undo for a placement the grid does not hold.
	ErrNotCommitted = errors.New("grid: placement was not committed")
)

// Direction selects the orientation of a placed word.
type Direction int

const (
	// Horizontal runs left→right along a row.
	Horizontal Direction = iota
	// Vertical runs top→bottom along a column.
	Vertical
)

// String renders the compact single-letter form used in placement maps.
func (d Direction) String() string {
	if d == Vertical {
		return "V"
	}

	return "H"
}

// Placement is one committed (or candidate) word assignment: which word
// (by its index in the original input list), its text, the start cell of
// its first letter, and its direction. A Placement is a value; committing
// and undoing the same value round-trips the grid exactly.
type Placement struct {
	Index int       // position of the word in the original input list
	Word  string    // word text; letters written cell by cell
	Row   int       // start row of the first letter
	Col   int       // start column of the first letter
	Dir   Direction // Horizontal or Vertical
}

// Len returns the number of cells the placement covers.
func (p Placement) Len() int { return len([]rune(p.Word)) }

// CellAt returns the coordinates of the i-th letter of the placement.
func (p Placement) CellAt(i int) (r, c int) {
	if p.Dir == Horizontal {
		return p.Row, p.Col + i
	}

	return p.Row + i, p.Col
}

// cell is one grid position: its letter (0 when empty), the indices of
// the words occupying it in commit order, and a per-direction cover
// count so perpendicularity queries need no placement lookup.
type cell struct {
	letter rune
	owners []int
	dirs   [2]int8 // committed words covering this cell, per Direction
}
