package astar

import (
	"container/heap"

	"github.com/katalvlaran/aocsearch/cost"
)

// Entry is a frontier item: a state, the cost g at which it was reached and
// its priority f = g + h.
type Entry[S any, D cost.Distance] struct {
	State S
	G     D
	F     D
	seq   uint64 // insertion order, breaks priority ties
}

// Frontier is a min-priority queue of entries keyed by F. Ties are broken by
// insertion order, so equal priorities pop first-in first-out.
//
// There is no decrease-key: re-inserting a state leaves the older entry in
// place, and the caller discards it on pop (lazy deletion).
type Frontier[S any, D cost.Distance] struct {
	pq      entryPQ[S, D]
	nextSeq uint64
}

// NewFrontier returns an empty frontier with room for capacity entries.
func NewFrontier[S any, D cost.Distance](capacity int) *Frontier[S, D] {
	f := &Frontier[S, D]{pq: make(entryPQ[S, D], 0, capacity)}
	heap.Init(&f.pq)

	return f
}

// Insert adds an entry. Complexity: O(log N).
func (f *Frontier[S, D]) Insert(s S, g, priority D) {
	heap.Push(&f.pq, &Entry[S, D]{State: s, G: g, F: priority, seq: f.nextSeq})
	f.nextSeq++
}

// PopMin removes and returns the entry with the smallest priority.
// ok is false when the frontier is empty. Complexity: O(log N).
func (f *Frontier[S, D]) PopMin() (e Entry[S, D], ok bool) {
	if f.pq.Len() == 0 {
		return e, false
	}

	return *heap.Pop(&f.pq).(*Entry[S, D]), true
}

// Peek returns the minimum entry without removing it.
func (f *Frontier[S, D]) Peek() (e Entry[S, D], ok bool) {
	if f.pq.Len() == 0 {
		return e, false
	}

	return *f.pq[0], true
}

// Len returns the number of entries, stale ones included.
func (f *Frontier[S, D]) Len() int { return f.pq.Len() }

// entryPQ implements heap.Interface over *Entry, ordered by (F, seq).
type entryPQ[S any, D cost.Distance] []*Entry[S, D]

func (pq entryPQ[S, D]) Len() int { return len(pq) }

func (pq entryPQ[S, D]) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}

	return pq[i].seq < pq[j].seq
}

func (pq entryPQ[S, D]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ[S, D]) Push(x any) { *pq = append(*pq, x.(*Entry[S, D])) }

func (pq *entryPQ[S, D]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
