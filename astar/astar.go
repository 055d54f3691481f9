package astar

import (
	"fmt"

	"github.com/katalvlaran/aocsearch/cost"
)

// Search finds the cheapest path from start to any state satisfying goal.
//
// h estimates the remaining cost from a state; nil means the constant-zero
// heuristic, which makes the search behave like Dijkstra. h must never
// overestimate for the returned cost to be optimal.
//
// Returns:
//
//   - Result with Found=true, the minimal Cost and the reached Goal state.
//     Path is filled only with WithReturnPath().
//   - ErrNoPath if no goal state is reachable (Result.Stats is still filled).
//
// Preconditions and validation (in order):
//  1. goal must be non-nil (ErrNilGoal).
//  2. every Option must be valid (ErrOptionViolation).
//  3. every generated step cost must be ≥ 0 (ErrNegativeCost).
//  4. the goal cost must stay below cost.Infinity (ErrCostOverflow).
//
// Cancellation via WithContext is checked before every pop; the context
// error is returned wrapped.
func Search[S State[S, D], D cost.Distance](start S, goal Goal[S], h Heuristic[S, D], opts ...Option[S, D]) (Result[S, D], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[S, D]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result[S, D]{}, cfg.err
	}
	if goal == nil {
		return Result[S, D]{}, ErrNilGoal
	}
	if h == nil {
		h = func(S) D { return cost.Zero[D]() }
	}

	// 2) Initialize runner and run the main loop.
	r := &runner[S, D]{
		options:   cfg,
		goal:      goal,
		heuristic: h,
		best:      make(map[S]D),
		frontier:  NewFrontier[S, D](64),
		inf:       cost.Infinity[D](),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}
	r.init(start)

	res, err := r.process()
	cfg.Observer.Finished(err == nil, float64(res.Cost))

	return res, err
}

// runner holds the mutable state for a single search.
type runner[S State[S, D], D cost.Distance] struct {
	options   Options[S, D]
	goal      Goal[S]
	heuristic Heuristic[S, D]
	best      map[S]D // state → cheapest known cost; values only decrease
	prev      map[S]S // state → predecessor on the cheapest known path
	frontier  *Frontier[S, D]
	inf       D // cost.Infinity, resolved once per search
	stats     Stats
}

// init records the start state at zero cost and pushes it onto the frontier.
func (r *runner[S, D]) init(start S) {
	zero := cost.Zero[D]()
	r.best[start] = zero
	r.push(start, zero)
}

// process is the core loop. It pops the cheapest entry, discards stale
// entries, stops at the first goal state and otherwise expands the state.
func (r *runner[S, D]) process() (Result[S, D], error) {
	ctx := r.options.Ctx
	for {
		if err := ctx.Err(); err != nil {
			return Result[S, D]{Stats: r.stats}, fmt.Errorf("astar: search cancelled: %w", err)
		}

		entry, ok := r.frontier.PopMin()
		if !ok {
			return Result[S, D]{Stats: r.stats}, ErrNoPath
		}

		// Lazy deletion: a cheaper route was recorded after this entry was pushed.
		if entry.G > r.best[entry.State] {
			r.stats.Stale++
			r.options.Observer.Stale()
			continue
		}

		if r.goal(entry.State) {
			if entry.G >= r.inf {
				return Result[S, D]{Stats: r.stats}, fmt.Errorf("%w: reached %v", ErrCostOverflow, entry.State)
			}
			return r.result(entry.State), nil
		}

		if r.options.MaxExpansions > 0 && r.stats.Expanded >= r.options.MaxExpansions {
			return Result[S, D]{Stats: r.stats}, fmt.Errorf("%w: %d states", ErrExpansionLimit, r.stats.Expanded)
		}
		if err := r.options.OnExpand(entry.State, entry.G); err != nil {
			return Result[S, D]{Stats: r.stats}, err
		}
		r.stats.Expanded++
		r.options.Observer.Expanded()

		if err := r.relax(entry.State, entry.G); err != nil {
			return Result[S, D]{Stats: r.stats}, err
		}
	}
}

// relax examines every step out of current (reached at cost g) and records
// any neighbor whose cost strictly improves.
func (r *runner[S, D]) relax(current S, g D) error {
	zero := cost.Zero[D]()
	for _, step := range current.Neighbors() {
		if step.Cost < zero {
			return fmt.Errorf("%w: %v from %v", ErrNegativeCost, step.Cost, current)
		}

		next := cost.AddCapped(g, step.Cost, r.inf)
		if r.options.hasMaxCost && next > r.options.MaxCost {
			continue
		}
		// strict "<" so equal-cost rediscoveries do not grow the frontier
		if known, seen := r.best[step.To]; seen && next >= known {
			continue
		}

		r.best[step.To] = next
		if r.prev != nil {
			r.prev[step.To] = current
		}
		r.stats.Relaxed++
		r.options.OnRelax(step.To, next)
		r.push(step.To, next)
	}

	return nil
}

func (r *runner[S, D]) push(s S, g D) {
	r.frontier.Insert(s, g, cost.AddCapped(g, r.heuristic(s), r.inf))
	r.stats.Pushed++
	r.options.Observer.Pushed()
	if n := r.frontier.Len(); n > r.stats.MaxFrontier {
		r.stats.MaxFrontier = n
	}
}

func (r *runner[S, D]) result(goal S) Result[S, D] {
	res := Result[S, D]{
		Cost:  r.best[goal],
		Found: true,
		Goal:  goal,
		Stats: r.stats,
	}
	if r.prev != nil {
		res.Path = reconstructPath(r.prev, goal)
	}

	return res
}

// reconstructPath walks predecessors back from the goal and reverses the result.
// The start state is the only state without a predecessor.
func reconstructPath[S comparable](prev map[S]S, goal S) []S {
	path := []S{goal}
	for cur := goal; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
