// Package grid models the square letter grid a crossword is assembled on.
//
// What:
//
//   - Grid wraps an N×N cell store where each cell is empty or holds a
//     single letter plus the indices of every word occupying it.
//   - Placement describes one committed word: index, text, start cell
//     and direction (Horizontal or Vertical).
//   - Commit / Undo are exact inverses: Undo restores the prior
//     occupancy sets, so a cell shared by two crossing words keeps its
//     letter until the last owner is removed.
//   - Crop trims the grid to the minimal bounding square around all
//     placed letters and reports the re-basing offsets.
//
// Why:
//
//   - The backtracking search engine mutates one Grid in place; cheap,
//     lossless undo is what makes depth-first retraction correct.
//   - Pure pre-checks (InBounds, CanPlace) let candidate generation
//     prune without touching state.
//
// Complexity:
//
//   - CanPlace / Commit / Undo: O(L) for a word of L letters.
//   - Crop / Blanks / Repr:     O(N²).
//
// Errors:
//
//   - ErrGridSize:     requested side length is not positive.
//   - ErrOutOfBounds:  a placement's span leaves the grid.
//   - ErrCellConflict: a covered cell holds a different letter.
//   - ErrNotCommitted: Undo for a word the cell set does not own.
//
// All mutation is confined to Commit and Undo; no other operation
// writes cells.
package grid
