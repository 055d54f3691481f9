package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aocsearch/astar"
	"github.com/katalvlaran/aocsearch/cost"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S any] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S astar.State[S, D], D cost.Distance] struct {
	opts  Options[S]
	ctx   context.Context
	queue []queueItem[S]
	res   *Result[S]
}

// Walk runs breadth-first search from start, treating every step as one hop.
// Returns ErrOptionViolation for bad options, the context error on
// cancellation, or any OnVisit error. The partial Result is returned
// alongside an error.
func Walk[S astar.State[S, D], D cost.Distance](start S, opts ...Option[S]) (*Result[S], error) {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S, D]{
		opts: o,
		ctx:  o.Ctx,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks s seen at depth d and appends it to the queue.
func (w *walker[S, D]) enqueue(s S, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, error or cancellation.
func (w *walker[S, D]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.state)
		if err := w.opts.OnVisit(item.state, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues every
// unseen neighbor.
func (w *walker[S, D]) enqueueNeighbors(item queueItem[S]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, step := range item.state.Neighbors() {
		if !w.opts.FilterNeighbor(item.state, step.To) {
			continue
		}
		if _, seen := w.res.Depth[step.To]; seen {
			continue
		}
		w.res.Parent[step.To] = item.state
		w.enqueue(step.To, next)
	}
}
