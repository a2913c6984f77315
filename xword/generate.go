// Package xword - unified entry point for crossword generation.
//
// Generate validates the input contract, orders the words, then runs a
// fixed number of independent search attempts - each with its own grid,
// derived RNG stream and (slightly growing) working bound - and returns
// the densest outcome. The attempt loop is the mechanism behind two
// promises:
//
//   - responsiveness: every attempt is budgeted, so infeasible inputs
//     degrade to the best partial grid instead of hanging;
//   - density: restarts explore different first-word orientations and
//     bounds, and the selection keeps the fullest, tightest grid.
//
// Attempt selection is order-independent (most words placed, then
// fewest blanks, then lowest attempt index), which makes the parallel
// fan-out bit-identical to the sequential loop.
package xword

import (
	"fmt"
	"io"
	"sync"

	"github.com/njcad/crossword/grid"
)

// boundMargin is the slack added to the longest word when sizing the
// working grid; attempts widen it further as they fail.
const boundMargin = 2

// Generate builds a filled crossword from words and returns the cropped
// grid plus the placement map keyed by original word index.
//
// Contracts:
//   - words must be non-empty and each word non-empty; duplicates are
//     permitted and treated as distinct entities.
//   - Normalization (casing, charset) is the caller's concern.
//
// Outcomes:
//   - complete: len(Result.Placements) == len(words).
//   - partial (budget or geometry): fewer entries; not an error.
//   - ErrEmptyWordList / ErrEmptyWord on input-contract violations.
//
// Determinism: identical words, options and seed ⇒ identical Result,
// regardless of Parallelism.
//
// Complexity: Attempts × budgeted search (see package doc).
func Generate(words []string, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ws, err := newWords(words)
	if err != nil {
		return Result{}, err
	}
	ordered := orderWords(ws)
	longest := ordered[0].Len()

	results := make([]Result, o.Attempts)
	run := func(a int) {
		bound := longest + boundMargin + a/boundGrowthEvery
		seed := attemptSeed(o.Seed, a)
		if o.Trace != nil {
			fmt.Fprintf(o.Trace, "attempt %d: bound=%d seed=%d\n", a, bound, seed)
		}
		results[a] = runAttempt(ordered, bound, seed, a, o)
		if o.Trace != nil {
			fmt.Fprintf(o.Trace, "attempt %d: placed %d/%d words\n", a, results[a].Placed(), len(words))
		}
	}

	if o.Parallelism > 1 {
		if o.Trace != nil {
			// Concurrent attempts share one sink; serialize the writes
			// so plain writers (strings.Builder, bytes.Buffer) stay
			// valid trace targets.
			o.Trace = &lockedWriter{w: o.Trace}
		}
		var (
			wg  sync.WaitGroup
			sem = make(chan struct{}, o.Parallelism)
		)
		for a := 0; a < o.Attempts; a++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(a int) {
				defer wg.Done()
				defer func() { <-sem }()
				run(a)
			}(a)
		}
		wg.Wait()
	} else {
		for a := 0; a < o.Attempts; a++ {
			run(a)
		}
	}

	best := 0
	for a := 1; a < len(results); a++ {
		if denser(results[a], results[best]) {
			best = a
		}
	}

	return results[best], nil
}

// runAttempt executes one budgeted search on a fresh grid and extracts
// its incumbent.
func runAttempt(ordered []Word, bound int, seed int64, attempt int, o Options) Result {
	g, err := grid.New(bound)
	if err != nil {
		// bound = longest word length + margin ≥ 3, so this cannot
		// happen for validated input; keep the guard anyway.
		return Result{Placements: map[int]grid.Placement{}, Attempt: attempt}
	}

	e := newEngine(g, ordered, rngFromSeed(seed), o)
	e.run()

	return extract(e.best.placements, bound, attempt, e.steps)
}

// lockedWriter guards a trace sink against interleaved writes from
// parallel attempts. Each Fprintf lands as one atomic line.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	return lw.w.Write(p)
}

// denser reports whether x beats y: more words placed, then fewer blank
// cells in the cropped grid. Equal candidates keep the earlier attempt,
// making the parallel fan-out order-independent.
func denser(x, y Result) bool {
	if x.Placed() != y.Placed() {
		return x.Placed() > y.Placed()
	}

	return x.blanks() < y.blanks()
}
