// Package xword assembles filled crossword grids from word lists via
// deterministic backtracking search.
//
// What:
//
//   - Generate is the single entry point: words in, cropped grid +
//     placement map out.
//   - A registry orders words for early constraint propagation (longest
//     first, richer letter sets break ties).
//   - A candidate generator proposes (position, direction) alignments
//     through same-letter cells, densest crossings first; the first word
//     seeds the grid centrally.
//   - One legality predicate guards every commit: boundary containment,
//     letter agreement, no false extension of existing words, and no
//     flank-to-flank parallel contact without a real crossing.
//   - An explicit-stack engine advances word by word, undoes dead
//     branches, and resumes the undone word at its next untried
//     candidate. A step/time budget bounds the search; when it runs out
//     the best (most words placed) state seen so far is returned.
//   - Several independent attempts run per call (optionally in
//     parallel), each with its own grid and a derived RNG stream; the
//     densest result wins.
//
// Why:
//
//   - Word-placement feasibility varies wildly by input; budgets plus
//     best-so-far snapshots trade completeness for sub-second response.
//   - Same words + same seed ⇒ identical output, sequential or parallel.
//
// Complexity:
//
//   - Candidate enumeration per word: O(L·N²) over an N×N working grid.
//   - Search: exponential worst case, bounded by MaxSteps/TimeLimit.
//
// Errors:
//
//   - ErrEmptyWordList: Generate called with no words.
//   - ErrEmptyWord:     a word with no letters.
//
// A partial placement (budget exhausted, or words that share no letters)
// is a normal outcome, not an error: inspect len(Result.Placements).
package xword
