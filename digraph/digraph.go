package digraph

import (
	"fmt"

	"github.com/katalvlaran/aocsearch/cost"
)

// AddVertex inserts v if it is not present yet. It is idempotent.
// Complexity: O(1) amortized.
func (g *Digraph[V, D]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(v)
}

func (g *Digraph[V, D]) addVertexLocked(v V) {
	if _, ok := g.adj[v]; ok {
		return
	}
	g.adj[v] = nil
	g.order = append(g.order, v)
}

// AddEdge adds the arc from→to with weight w, creating missing endpoints.
// Parallel arcs are allowed; the search simply sees both.
//
// Errors:
//   - ErrNegativeWeight if w < 0.
//   - ErrLoopNotAllowed if from == to and WithLoops was not given.
func (g *Digraph[V, D]) AddEdge(from, to V, w D) error {
	if w < cost.Zero[D]() {
		return fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, from, to, w)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adj[from] = append(g.adj[from], Edge[V, D]{From: from, To: to, Weight: w})

	return nil
}

// HasVertex reports whether v exists.
func (g *Digraph[V, D]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[v]
	return ok
}

// Vertices returns a copy of all vertices in insertion order.
func (g *Digraph[V, D]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns a copy of the out-edges of v in insertion order.
func (g *Digraph[V, D]) Edges(v V) ([]Edge[V, D], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]Edge[V, D], len(edges))
	copy(out, edges)

	return out, nil
}

// Order returns the number of vertices.
func (g *Digraph[V, D]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Size returns the number of edges.
func (g *Digraph[V, D]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, edges := range g.adj {
		n += len(edges)
	}

	return n
}
