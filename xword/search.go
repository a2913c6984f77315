// Package xword - the backtracking placement engine.
//
// The engine is an explicit-stack depth-first search over placement
// frames, one frame per word in registry order:
//
//  1. Advance: push a frame for the next pending word, generate its
//     candidate sequence against the current grid, commit the first
//     legal candidate, descend.
//  2. Backtrack: a frame whose candidates are exhausted pops; the frame
//     below undoes its own commitment and resumes at its next untried
//     candidate — incremental resumption, never a re-search.
//  3. Terminal: every word committed (success), the stack drains
//     (first word out of candidates), or the step/time budget is hit.
//
// On any terminal state the engine keeps its best-so-far snapshot: the
// placement set with the most words, ties broken by fewer blank cells.
// That snapshot — not the possibly-unwound live grid — is what the
// caller extracts, which is how budget exhaustion degrades to a partial
// solution instead of a failure.
//
// Determinism:
//   - Candidate order is deterministic; the rng decides only the first
//     word's orientation preference.
//   - The deadline is checked sparsely (every 256 steps) and therefore
//     can overshoot slightly; the step budget is exact.
package xword

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/njcad/crossword/grid"
)

// deadlineCheckMask throttles wall-clock reads to every 256 frame
// transitions; a step is far cheaper than a syscall.
const deadlineCheckMask = 255

// frame is one stack entry: a word, its candidate sequence for the grid
// state it was generated against, and its current commitment.
type frame struct {
	word      Word
	cands     *candidateSet
	placement grid.Placement
	committed bool
}

// snapshot is the incumbent best partial solution.
type snapshot struct {
	placements map[int]grid.Placement
	blanks     int
}

// engine holds all search data for a single attempt. A dedicated struct
// (rather than closures) keeps hot-path state predictable and testing
// simple; the grid is exclusively owned for the duration of run.
type engine struct {
	g       *grid.Grid
	ordered []Word
	rng     *rand.Rand
	trace   io.Writer

	// Budget
	maxSteps    int
	useDeadline bool
	deadline    time.Time
	steps       int

	// Search state
	stack  []frame
	placed map[int]grid.Placement

	// Incumbent
	best snapshot
}

// newEngine wires an engine over a fresh grid for one attempt.
func newEngine(g *grid.Grid, ordered []Word, rng *rand.Rand, o Options) *engine {
	e := &engine{
		g:        g,
		ordered:  ordered,
		rng:      rng,
		trace:    o.Trace,
		maxSteps: o.MaxSteps,
		placed:   make(map[int]grid.Placement, len(ordered)),
	}
	if o.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(o.TimeLimit)
	}

	return e
}

// run drives the search to a terminal state. It never returns an error:
// all placement-legality failures are recovered locally by backtracking,
// and budget exhaustion simply freezes the incumbent.
func (e *engine) run() {
	e.pushFrame()
	for len(e.stack) > 0 {
		if e.budgetExhausted() {
			e.tracef("budget exhausted after %d steps; keeping best of %d words", e.steps, len(e.best.placements))

			return
		}

		f := &e.stack[len(e.stack)-1]
		if f.committed {
			// Re-entered from a backtrack: retract our own commitment
			// before trying the next candidate.
			_ = e.g.Undo(f.placement)
			delete(e.placed, f.word.Index)
			f.committed = false
		}

		p, ok := f.cands.next()
		e.steps++
		if !ok {
			e.stack = e.stack[:len(e.stack)-1]
			e.tracef("backtrack: no remaining fit for %q", f.word.Text)

			continue
		}

		// Final commit check through the same predicate the generator
		// pruned with; the grid state is unchanged, so this is a cheap
		// invariant guard rather than a second opinion.
		if !legal(e.g, p) {
			continue
		}
		if err := e.g.Commit(p); err != nil {
			continue
		}
		f.placement, f.committed = p, true
		e.placed[f.word.Index] = p
		e.tracef("place %q at (%d,%d) %s", p.Word, p.Row, p.Col, p.Dir)
		e.keepIfBest()

		if len(e.stack) == len(e.ordered) {
			e.tracef("all %d words placed in %d steps", len(e.ordered), e.steps)

			return
		}
		e.pushFrame()
	}
	e.tracef("search space exhausted after %d steps; best holds %d words", e.steps, len(e.best.placements))
}

// pushFrame opens the frame for the next pending word, generating its
// candidates against the current grid.
func (e *engine) pushFrame() {
	w := e.ordered[len(e.stack)]
	var cs *candidateSet
	if len(e.stack) == 0 {
		cs = firstCandidates(e.g, w, e.rng)
	} else {
		cs = crossingCandidates(e.g, w)
	}
	e.stack = append(e.stack, frame{word: w, cands: cs})
}

// budgetExhausted applies the exact step budget and the sparse deadline.
func (e *engine) budgetExhausted() bool {
	if e.steps >= e.maxSteps {
		return true
	}
	if e.useDeadline && e.steps&deadlineCheckMask == 0 {
		return time.Now().After(e.deadline)
	}

	return false
}

// keepIfBest updates the incumbent when the current state places more
// words, or equally many with fewer blank cells. Snapshots only ever
// improve, so a larger budget can never yield a smaller result.
func (e *engine) keepIfBest() {
	count := len(e.placed)
	switch {
	case count < len(e.best.placements):
		return
	case count == len(e.best.placements):
		if e.g.Blanks() >= e.best.blanks {
			return
		}
	}
	cp := make(map[int]grid.Placement, count)
	for idx, p := range e.placed {
		cp[idx] = p
	}
	e.best = snapshot{placements: cp, blanks: e.g.Blanks()}
}

// tracef writes one narration line when a trace sink is configured.
func (e *engine) tracef(format string, args ...any) {
	if e.trace == nil {
		return
	}
	fmt.Fprintf(e.trace, format+"\n", args...)
}
