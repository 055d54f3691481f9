package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/aocsearch/cost"
	"github.com/katalvlaran/aocsearch/digraph"
)

// Dijkstra computes shortest distances from source to every reachable vertex of g.
//
// Returns:
//
//   - dist: vertex → minimum distance. Unreachable vertices are absent.
//   - prev: predecessor map if WithReturnPath() was given (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//   - err:  ErrNilGraph, ErrVertexNotFound or ErrBadMaxDistance.
func Dijkstra[V comparable, D cost.Distance](g *digraph.Digraph[V, D], source V, opts ...Option[D]) (map[V]D, map[V]V, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[D]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	// 3) Prepare data structures
	n := g.Order()
	r := &runner[V, D]{
		g:       g,
		options: cfg,
		dist:    make(map[V]D, n),
		visited: make(map[V]bool, n),
		pq:      make(nodePQ[V, D], 0, n),
		inf:     cost.Infinity[D](),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]V, n)
	}

	// 4) Run
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, D cost.Distance] struct {
	g       *digraph.Digraph[V, D]
	options Options[D]
	dist    map[V]D    // vertex → best distance so far
	prev    map[V]V    // vertex → predecessor on the shortest path
	visited map[V]bool // vertex → distance finalized
	pq      nodePQ[V, D]
	inf     D
}

// init records the source at distance zero and pushes it into the heap.
func (r *runner[V, D]) init(source V) {
	zero := cost.Zero[D]()
	r.dist[source] = zero
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V, D]{id: source, dist: zero})
}

// process repeatedly extracts the closest unfinalized vertex and relaxes its
// out-edges until the heap is empty or the next distance exceeds MaxDistance.
func (r *runner[V, D]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V, D])
		u := item.id

		// stale heap entry
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances to the out-neighbors of u. Assumes dist[u] is final.
func (r *runner[V, D]) relax(u V) error {
	edges, err := r.g.Edges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %v: %w", u, err)
	}

	for _, e := range edges {
		v := e.To
		newDist := cost.AddCapped(r.dist[u], e.Weight, r.inf)
		if newDist > r.options.MaxDistance {
			continue
		}
		// “<” rather than “≤” avoids pushing duplicates on equal distances.
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem[V, D]{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a vertex and its tentative distance from the source.
type nodeItem[V comparable, D cost.Distance] struct {
	id   V
	dist D
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ[V comparable, D cost.Distance] []*nodeItem[V, D]

func (pq nodePQ[V, D]) Len() int            { return len(pq) }
func (pq nodePQ[V, D]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[V, D]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[V, D]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[V, D])) }

func (pq *nodePQ[V, D]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
