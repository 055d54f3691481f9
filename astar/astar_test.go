// Package astar_test validates the A* driver: option validation, optimality
// against brute force, lazy deletion, hooks, limits and cancellation.
package astar_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocsearch/astar"
	"github.com/katalvlaran/aocsearch/cost"
)

// ------------------------------------------------------------------------
// Fixtures
// ------------------------------------------------------------------------

type arc struct{ to, w int }

// network is an explicit adjacency list used to drive the engine in tests.
type network map[int][]arc

// node is a state bound to a network.
type node struct {
	id  int
	net *network
}

func (n node) Neighbors() []astar.Step[node, int] {
	arcs := (*n.net)[n.id]
	steps := make([]astar.Step[node, int], 0, len(arcs))
	for _, a := range arcs {
		steps = append(steps, astar.Step[node, int]{Cost: a.w, To: node{id: a.to, net: n.net}})
	}
	return steps
}

func at(net *network, id int) node { return node{id: id, net: net} }

// ids lists the node IDs along a path.
func ids(path []node) []int {
	out := make([]int, 0, len(path))
	for _, n := range path {
		out = append(out, n.id)
	}
	return out
}

func reach(id int) astar.Goal[node] {
	return func(n node) bool { return n.id == id }
}

// chain is a state whose only successor is depth+1, reached at cost depth+1.
type chain struct{ depth, limit int }

func (c chain) Neighbors() []astar.Step[chain, int] {
	if c.depth == c.limit {
		return nil
	}
	return []astar.Step[chain, int]{{Cost: c.depth + 1, To: chain{depth: c.depth + 1, limit: c.limit}}}
}

// randomDAG returns a DAG on n vertices where every arc goes from i to j>i.
func randomDAG(rng *rand.Rand, n int, density float64) *network {
	net := network{}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				net[i] = append(net[i], arc{to: j, w: rng.Intn(20)})
			}
		}
	}
	return &net
}

// remaining computes exact distances to target by backward DP over the
// topological order 0..n-1. Unreachable vertices get cost.Infinity.
func remaining(net *network, n, target int) []int {
	inf := cost.Infinity[int]()
	d := make([]int, n)
	for i := range d {
		d[i] = inf
	}
	d[target] = 0
	for i := n - 1; i >= 0; i-- {
		for _, a := range (*net)[i] {
			if d[a.to] != inf && a.w+d[a.to] < d[i] {
				d[i] = a.w + d[a.to]
			}
		}
	}
	return d
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilGoal(t *testing.T) {
	net := &network{}
	_, err := astar.Search[node, int](at(net, 0), nil, nil)
	require.ErrorIs(t, err, astar.ErrNilGoal)
}

func TestSearch_OptionViolations(t *testing.T) {
	net := &network{}
	cases := []struct {
		name string
		opt  astar.Option[node, int]
	}{
		{"NegativeMaxCost", astar.WithMaxCost[node, int](-1)},
		{"NegativeMaxExpansions", astar.WithMaxExpansions[node, int](-5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := astar.Search(at(net, 0), reach(0), nil, tc.opt)
			require.ErrorIs(t, err, astar.ErrOptionViolation)
		})
	}
}

func TestSearch_NegativeStepCost(t *testing.T) {
	net := &network{0: {{1, -3}}}
	_, err := astar.Search[node, int](at(net, 0), reach(1), nil)
	require.ErrorIs(t, err, astar.ErrNegativeCost)
}

// ------------------------------------------------------------------------
// 2. Basic behaviour
// ------------------------------------------------------------------------

func TestSearch_StartIsGoal(t *testing.T) {
	net := &network{0: {{1, 4}}}
	res, err := astar.Search(at(net, 0), reach(0), nil, astar.WithReturnPath[node, int]())
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, []node{at(net, 0)}, res.Path)
	assert.Equal(t, 0, res.Stats.Expanded)
}

func TestSearch_SingleNeighborChain(t *testing.T) {
	const limit = 10
	goal := func(c chain) bool { return c.depth == limit }
	res, err := astar.Search[chain, int](chain{limit: limit}, goal, nil)
	require.NoError(t, err)
	// 1 + 2 + … + 10
	require.Equal(t, 55, res.Cost)
	require.Equal(t, limit, res.Stats.Expanded)
	require.Equal(t, limit+1, res.Stats.Pushed)
}

func TestSearch_NoPath(t *testing.T) {
	// 0→1→2 and an isolated 3
	net := &network{0: {{1, 1}}, 1: {{2, 1}}, 3: nil}
	res, err := astar.Search[node, int](at(net, 0), reach(3), nil)
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.False(t, res.Found)
	assert.Zero(t, res.Cost, "no partial cost on failure")
	assert.Equal(t, 3, res.Stats.Expanded, "dead end 2 is still expanded")
}

func TestSearch_ReturnPath(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	// A→C→B ties with A→B; the first route found is kept.
	net := &network{0: {{1, 2}, {2, 1}}, 2: {{1, 1}, {3, 5}}, 1: {{3, 3}}}
	res, err := astar.Search(at(net, 0), reach(3), nil, astar.WithReturnPath[node, int]())
	require.NoError(t, err)
	require.Equal(t, 5, res.Cost)

	require.Equal(t, []int{0, 1, 3}, ids(res.Path))
	require.Equal(t, at(net, 3), res.Goal)
}

func TestSearch_LazyDeletionDiscardsStaleEntries(t *testing.T) {
	// B is first pushed at 10, then improved to 2 through C.
	net := &network{0: {{1, 10}, {2, 1}}, 2: {{1, 1}}, 1: {{3, 1}}}
	never := func(node) bool { return false }

	res, err := astar.Search[node, int](at(net, 0), never, nil)
	require.ErrorIs(t, err, astar.ErrNoPath)
	assert.Equal(t, 1, res.Stats.Stale)
	assert.Equal(t, 4, res.Stats.Expanded, "every state expanded exactly once")
	assert.Equal(t, 5, res.Stats.Pushed)
	assert.Equal(t, 4, res.Stats.Relaxed, "every push after the start follows a relaxation")
}

// TestSearch_InconsistentHeuristicReexpands uses an admissible but
// inconsistent estimate: h(1)=5 while 1→2 costs 1 and h(2)=0. State 2 is
// first expanded at g=4, then reached again at g=2 and expanded a second
// time, which is what keeps the answer optimal.
func TestSearch_InconsistentHeuristicReexpands(t *testing.T) {
	// 0→1 (1), 0→2 (4), 1→2 (1), 2→3 (5); the optimum 0,1,2,3 costs 7.
	net := &network{0: {{1, 1}, {2, 4}}, 1: {{2, 1}}, 2: {{3, 5}}}
	h := func(n node) int {
		if n.id == 1 {
			return 5 // true remaining cost from 1 is 6
		}
		return 0
	}

	expansions := map[int]int{}
	res, err := astar.Search(at(net, 0), reach(3), h,
		astar.WithReturnPath[node, int](),
		astar.WithOnExpand(func(n node, _ int) error {
			expansions[n.id]++
			return nil
		}))
	require.NoError(t, err)

	assert.Equal(t, 7, res.Cost)
	assert.Equal(t, []int{0, 1, 2, 3}, ids(res.Path))
	assert.Equal(t, 2, expansions[2], "state 2 must be expanded again after its cost drops")
	assert.Equal(t, astar.Stats{Expanded: 4, Pushed: 6, Stale: 0, Relaxed: 5, MaxFrontier: res.Stats.MaxFrontier}, res.Stats)
}

// byteChain steps from depth d to d+1 at cost 200, overflowing uint8 by depth 2.
type byteChain int

func (c byteChain) Neighbors() []astar.Step[byteChain, uint8] {
	return []astar.Step[byteChain, uint8]{{Cost: 200, To: c + 1}}
}

func TestSearch_CostOverflow(t *testing.T) {
	res, err := astar.Search[byteChain, uint8](0, func(c byteChain) bool { return c == 3 }, nil)
	require.ErrorIs(t, err, astar.ErrCostOverflow)
	assert.False(t, res.Found)
	assert.Zero(t, res.Cost)

	res, err = astar.Search[byteChain, uint8](0, func(c byteChain) bool { return c == 1 }, nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), res.Cost, "representable costs are unaffected")
}

func TestSearch_FloatCosts(t *testing.T) {
	goal := func(s floatState) bool { return s == "z" }
	res, err := astar.Search[floatState, float64]("a", goal, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.75, res.Cost, 1e-9)
}

// floatState walks a→m→z (0.5 + 1.25) or a→z (2.0).
type floatState string

func (s floatState) Neighbors() []astar.Step[floatState, float64] {
	switch s {
	case "a":
		return []astar.Step[floatState, float64]{{Cost: 2.0, To: "z"}, {Cost: 0.5, To: "m"}}
	case "m":
		return []astar.Step[floatState, float64]{{Cost: 1.25, To: "z"}}
	}
	return nil
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

func TestSearch_OptimalOnRandomDAGs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inf := cost.Infinity[int]()

	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(14)
		net := randomDAG(rng, n, 0.35)
		target := n - 1
		exact := remaining(net, n, target)

		// admissible: half of the true remaining cost, 0 where unreachable
		half := func(s node) int {
			if exact[s.id] == inf {
				return 0
			}
			return exact[s.id] / 2
		}
		perfect := func(s node) int {
			if exact[s.id] == inf {
				return 0
			}
			return exact[s.id]
		}

		for name, h := range map[string]astar.Heuristic[node, int]{"zero": nil, "half": half, "perfect": perfect} {
			res, err := astar.Search(at(net, 0), reach(target), h)
			if exact[0] == inf {
				require.ErrorIs(t, err, astar.ErrNoPath, "trial %d heuristic %s", trial, name)
				continue
			}
			require.NoError(t, err, "trial %d heuristic %s", trial, name)
			require.Equal(t, exact[0], res.Cost, "trial %d heuristic %s", trial, name)
		}
	}
}

func TestSearch_BestCostIsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		n := 12
		net := randomDAG(rng, n, 0.5)
		last := map[int]int{0: 0}
		onRelax := func(s node, g int) {
			if prev, ok := last[s.id]; ok {
				require.Less(t, g, prev, "cost of %d increased", s.id)
			}
			last[s.id] = g
		}
		never := func(node) bool { return false }
		_, err := astar.Search(at(net, 0), never, nil, astar.WithOnRelax(onRelax))
		require.ErrorIs(t, err, astar.ErrNoPath)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	net := randomDAG(rng, 30, 0.3)
	run := func() astar.Result[node, int] {
		res, err := astar.Search(at(net, 0), reach(29), nil, astar.WithReturnPath[node, int]())
		if errors.Is(err, astar.ErrNoPath) {
			return res
		}
		require.NoError(t, err)
		return res
	}
	first := run()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, run())
	}
}

// ------------------------------------------------------------------------
// 4. Limits, hooks and cancellation
// ------------------------------------------------------------------------

func TestSearch_MaxCost(t *testing.T) {
	net := &network{0: {{1, 4}}, 1: {{2, 4}}}

	_, err := astar.Search(at(net, 0), reach(2), nil, astar.WithMaxCost[node, int](7))
	require.ErrorIs(t, err, astar.ErrNoPath)

	res, err := astar.Search(at(net, 0), reach(2), nil, astar.WithMaxCost[node, int](8))
	require.NoError(t, err)
	require.Equal(t, 8, res.Cost)
}

func TestSearch_MaxExpansions(t *testing.T) {
	goal := func(c chain) bool { return c.depth == 100 }
	res, err := astar.Search(chain{limit: 100}, goal, nil, astar.WithMaxExpansions[chain, int](10))
	require.ErrorIs(t, err, astar.ErrExpansionLimit)
	require.Equal(t, 10, res.Stats.Expanded)
}

func TestSearch_OnExpandAborts(t *testing.T) {
	stop := errors.New("stop")
	onExpand := func(c chain, g int) error {
		if c.depth == 3 {
			return stop
		}
		return nil
	}
	goal := func(c chain) bool { return c.depth == 10 }
	_, err := astar.Search(chain{limit: 10}, goal, nil, astar.WithOnExpand(onExpand))
	require.ErrorIs(t, err, stop)
}

func TestSearch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	goal := func(c chain) bool { return c.depth == 10 }
	_, err := astar.Search(chain{limit: 10}, goal, nil, astar.WithContext[chain, int](ctx))
	require.ErrorIs(t, err, context.Canceled)
}

type countingObserver struct {
	expanded, pushed, stale int
	finished                bool
	found                   bool
	total                   float64
}

func (o *countingObserver) Expanded() { o.expanded++ }
func (o *countingObserver) Pushed()   { o.pushed++ }
func (o *countingObserver) Stale()    { o.stale++ }
func (o *countingObserver) Finished(found bool, total float64) {
	o.finished, o.found, o.total = true, found, total
}

func TestSearch_Observer(t *testing.T) {
	net := &network{0: {{1, 10}, {2, 1}}, 2: {{1, 1}}, 1: {{3, 1}}, 3: {{4, 1}}}
	obs := &countingObserver{}
	res, err := astar.Search(at(net, 0), reach(4), nil, astar.WithObserver[node, int](obs))
	require.NoError(t, err)

	assert.True(t, obs.finished)
	assert.True(t, obs.found)
	assert.Equal(t, float64(res.Cost), obs.total)
	assert.Equal(t, res.Stats.Expanded, obs.expanded)
	assert.Equal(t, res.Stats.Pushed, obs.pushed)
	assert.Equal(t, res.Stats.Stale, obs.stale)
}
