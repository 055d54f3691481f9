package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a state the walk never saw.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Option configures Walk via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Walk is invoked.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize a walk.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a state. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip transitions by returning false.
	FilterNeighbor func(curr, next S) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering, no-op OnVisit.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:            context.Background(),
		OnVisit:        func(S, int) error { return nil },
		FilterNeighbor: func(_, _ S) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *Options[S]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips transitions when fn returns false.
func WithFilterNeighbor[S comparable](fn func(curr, next S) bool) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: states visited, in visit sequence.
//   - Depth: hops from the start state.
//   - Parent: predecessor in the BFS tree; the start has none.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
}

// PathTo reconstructs the fewest-hops path from the start state to dest.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
