package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aocsearch/cost"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrNoPath indicates that the frontier was exhausted without reaching a goal state.
	ErrNoPath = errors.New("astar: no path found")

	// ErrNegativeCost indicates that a state produced a step with negative cost.
	ErrNegativeCost = errors.New("astar: negative step cost")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates that the search expanded MaxExpansions states
	// without reaching a goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrCostOverflow indicates that the cheapest goal cost saturated at
	// cost.Infinity, so the true cost is not representable in D.
	ErrCostOverflow = errors.New("astar: goal cost overflows distance type")
)

// Step is a single transition: the cost of taking it and the state it leads to.
type Step[S any, D cost.Distance] struct {
	Cost D
	To   S
}

// State is the capability required from search states. Neighbors must be
// finite and deterministic; equal states must yield equal (possibly
// reordered) steps. A dead end returns an empty slice.
type State[S any, D cost.Distance] interface {
	comparable
	Neighbors() []Step[S, D]
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
type Heuristic[S any, D cost.Distance] func(S) D

// Goal reports whether a state terminates the search.
type Goal[S any] func(S) bool

// Observer receives counters from a running search. Implementations must be
// cheap; they are called from the hot loop.
type Observer interface {
	// Expanded is called once per state whose neighbors are generated.
	Expanded()
	// Pushed is called once per frontier insertion.
	Pushed()
	// Stale is called once per discarded frontier entry.
	Stale()
	// Finished is called once when Search returns. total is meaningful only if found.
	Finished(found bool, total float64)
}

// Options holds parameters and callbacks to customize a search.
type Options[S any, D cost.Distance] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// ReturnPath keeps predecessors and fills Result.Path.
	ReturnPath bool

	// MaxCost, if set, prevents relaxing any state whose cost would exceed it.
	MaxCost    D
	hasMaxCost bool

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many states have been expanded.
	MaxExpansions int

	// OnExpand is called before a state's neighbors are generated. If it
	// returns an error the search aborts and propagates it.
	OnExpand func(s S, g D) error

	// OnRelax is called whenever a state's best-known cost is lowered.
	OnRelax func(s S, g D)

	// Observer receives search counters.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Search is invoked.
type Option[S any, D cost.Distance] func(*Options[S, D])

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no path reconstruction, no cost cap, no expansion limit
//   - no-op hooks and observer
func DefaultOptions[S any, D cost.Distance]() Options[S, D] {
	return Options[S, D]{
		Ctx:      context.Background(),
		OnExpand: func(S, D) error { return nil },
		OnRelax:  func(S, D) {},
		Observer: nopObserver{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S any, D cost.Distance](ctx context.Context) Option[S, D] {
	return func(o *Options[S, D]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath enables path reconstruction in the Result.
func WithReturnPath[S any, D cost.Distance]() Option[S, D] {
	return func(o *Options[S, D]) {
		o.ReturnPath = true
	}
}

// WithMaxCost skips any relaxation whose tentative cost exceeds max.
// A negative max is an option violation.
func WithMaxCost[S any, D cost.Distance](max D) Option[S, D] {
	return func(o *Options[S, D]) {
		if max < cost.Zero[D]() {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
		o.hasMaxCost = true
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0: abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions[S any, D cost.Distance](n int) Option[S, D] {
	return func(o *Options[S, D]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run before each expansion; returning an
// error from it stops the search.
func WithOnExpand[S any, D cost.Distance](fn func(s S, g D) error) Option[S, D] {
	return func(o *Options[S, D]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run whenever a state's best cost drops.
func WithOnRelax[S any, D cost.Distance](fn func(s S, g D)) Option[S, D] {
	return func(o *Options[S, D]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithObserver attaches an Observer.
func WithObserver[S any, D cost.Distance](obs Observer) Option[S, D] {
	return func(o *Options[S, D]) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Expanded    int // states whose neighbors were generated
	Pushed      int // frontier insertions, including the start state
	Stale       int // frontier entries discarded by lazy deletion
	Relaxed     int // best-cost improvements, one per OnRelax call
	MaxFrontier int // peak frontier size
}

// Result holds the outcome of a successful search.
//   - Cost: minimal total cost from the start to Goal.
//   - Goal: the goal state that was reached.
//   - Path: start … Goal, only when WithReturnPath was given.
type Result[S any, D cost.Distance] struct {
	Cost  D
	Found bool
	Goal  S
	Path  []S
	Stats Stats
}

type nopObserver struct{}

func (nopObserver) Expanded()              {}
func (nopObserver) Pushed()                {}
func (nopObserver) Stale()                 {}
func (nopObserver) Finished(bool, float64) {}
