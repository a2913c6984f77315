// Package crossword generates filled crossword grids from arbitrary
// word lists — a placement search engine, not a puzzle-with-clues app.
//
// 🚀 What is crossword?
//
//	A deterministic, seed-reproducible library that brings together:
//		• Grid model: square cell store with commit/undo placement bookkeeping
//		• Word registry: constraint-first ordering (longest, richest letters)
//		• Candidate generation: crossing-cell alignment, density-preferring order
//		• Legality rules: collision, adjacency and false-extension checks
//		• Backtracking search: explicit-stack DFS under a step/time budget
//		• Multi-attempt restarts: independent seeded tries, densest grid wins
//
// ✨ Why choose crossword?
//
//   - Predictable – same words + same seed ⇒ identical grid, every time
//   - Responsive – soft budgets return the best partial grid instead of hanging
//   - Pure Go – no cgo, no hidden deps
//   - Parallel-ready – attempts own their grids; fan them out safely
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/  — square letter grid, Placement, Commit/Undo, Crop
//	xword/ — registry, candidates, validator, search engine, Generate
//
// Quick ASCII example:
//
//	    c a t
//	    a
//	    r
//
//	"cat" and "car" crossing on their shared 'c'.
//
// Dive into xword.Generate for the single entry point, and cmd/xwordgen
// for a small CLI wrapper.
//
//	go get github.com/njcad/crossword
package crossword
