package digraph

import (
	"github.com/katalvlaran/aocsearch/astar"
	"github.com/katalvlaran/aocsearch/cost"
)

// Vertex is a search state positioned on a vertex of a Digraph.
// It is a small comparable value: two Vertex values are equal when they
// refer to the same graph and the same ID.
type Vertex[V comparable, D cost.Distance] struct {
	g  *Digraph[V, D]
	ID V
}

// At returns the search state for vertex v. v need not exist; a missing
// vertex simply has no neighbors.
func (g *Digraph[V, D]) At(v V) Vertex[V, D] {
	return Vertex[V, D]{g: g, ID: v}
}

// Neighbors lists one step per out-edge, in insertion order.
func (x Vertex[V, D]) Neighbors() []astar.Step[Vertex[V, D], D] {
	x.g.mu.RLock()
	defer x.g.mu.RUnlock()

	edges := x.g.adj[x.ID]
	steps := make([]astar.Step[Vertex[V, D], D], 0, len(edges))
	for _, e := range edges {
		steps = append(steps, astar.Step[Vertex[V, D], D]{Cost: e.Weight, To: Vertex[V, D]{g: x.g, ID: e.To}})
	}

	return steps
}

// Is returns a goal predicate matching vertex v.
func Is[V comparable, D cost.Distance](v V) astar.Goal[Vertex[V, D]] {
	return func(x Vertex[V, D]) bool { return x.ID == v }
}
