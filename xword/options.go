package xword

import (
	"io"
	"os"
	"time"
)

// DefaultMaxSteps bounds search-frame transitions per attempt. The value
// keeps ~30-word inputs well under a second while leaving hard inputs
// room to backtrack; treat it as a tunable, not a contract.
const DefaultMaxSteps = 200_000

// DefaultAttempts is the number of independent seeded restarts per
// Generate call.
const DefaultAttempts = 10

// boundGrowthEvery is how many attempts run at a given working-grid
// bound before it grows by one cell.
const boundGrowthEvery = 5

// Options configures the behavior of Generate.
//
// Seed        – RNG seed; 0 selects a fixed default so results stay
//
//	reproducible by default.
//
// MaxSteps    – per-attempt search budget, counted at frame transitions.
// TimeLimit   – optional per-attempt wall-clock budget (0 disables).
// Attempts    – independent restarts; the densest result wins.
// Parallelism – attempts run on this many goroutines (1 = sequential).
// Trace       – verbose narration sink (nil = silent). Observability
//
//	only; never affects the result.
type Options struct {
	Seed        int64
	MaxSteps    int
	TimeLimit   time.Duration
	Attempts    int
	Parallelism int
	Trace       io.Writer
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// WithSeed sets the RNG seed. Seed 0 keeps the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxSteps caps search-frame transitions per attempt.
// Must be positive; invalid values cause ErrBadMaxSteps.
func WithMaxSteps(steps int) Option {
	return func(o *Options) {
		if steps <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = steps
	}
}

// WithTimeLimit sets an optional per-attempt wall-clock budget.
// Zero disables deadline checks; negative values cause ErrBadTimeLimit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadTimeLimit.Error())
		}
		o.TimeLimit = d
	}
}

// WithAttempts sets the number of independent seeded restarts.
// Must be positive; invalid values cause ErrBadAttempts.
func WithAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadAttempts.Error())
		}
		o.Attempts = n
	}
}

// WithParallelism runs attempts on n goroutines. Each attempt owns an
// independent grid and RNG stream, so the winner is the same regardless
// of scheduling. Must be positive; invalid values cause ErrBadParallelism.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadParallelism.Error())
		}
		o.Parallelism = n
	}
}

// WithTrace directs human-readable attempt/backtrack narration to w.
// A nil writer keeps the engine silent.
func WithTrace(w io.Writer) Option {
	return func(o *Options) {
		o.Trace = w
	}
}

// WithVerbose is shorthand for WithTrace(os.Stdout).
func WithVerbose() Option {
	return func(o *Options) {
		o.Trace = os.Stdout
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Seed:        0 (fixed default stream; deterministic).
//   - MaxSteps:    DefaultMaxSteps.
//   - TimeLimit:   0 (no wall-clock budget).
//   - Attempts:    DefaultAttempts.
//   - Parallelism: 1 (sequential).
//   - Trace:       nil (silent).
func DefaultOptions() Options {
	return Options{
		Seed:        0,
		MaxSteps:    DefaultMaxSteps,
		TimeLimit:   0,
		Attempts:    DefaultAttempts,
		Parallelism: 1,
		Trace:       nil,
	}
}
