package digraph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/aocsearch/cost"
)

// Sentinel errors for digraph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("digraph: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("digraph: self-loop not allowed")
)

// Edge is a weighted arc From→To.
type Edge[V comparable, D cost.Distance] struct {
	From   V
	To     V
	Weight D
}

// GraphOption configures a Digraph before creation.
type GraphOption func(*config)

type config struct {
	allowLoops bool
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// Digraph is a weighted directed graph.
// mu guards order and adj.
type Digraph[V comparable, D cost.Distance] struct {
	mu sync.RWMutex

	allowLoops bool

	order []V                // vertices in insertion order
	adj   map[V][]Edge[V, D] // vertex → out-edges in insertion order
}

// New creates an empty Digraph. By default self-loops are rejected.
func New[V comparable, D cost.Distance](opts ...GraphOption) *Digraph[V, D] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Digraph[V, D]{
		allowLoops: c.allowLoops,
		adj:        make(map[V][]Edge[V, D]),
	}
}
