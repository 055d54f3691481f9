package dijkstra

import (
	"errors"

	"github.com/katalvlaran/aocsearch/cost"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Dijkstra.
//
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – vertices farther than this are not explored.
type Options[D cost.Distance] struct {
	ReturnPath  bool
	MaxDistance D

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option[D cost.Distance] func(*Options[D])

// DefaultOptions returns Options with no path reconstruction and no distance cap.
func DefaultOptions[D cost.Distance]() Options[D] {
	return Options[D]{MaxDistance: cost.Infinity[D]()}
}

// WithReturnPath enables generation of the predecessor map.
func WithReturnPath[D cost.Distance]() Option[D] {
	return func(o *Options[D]) { o.ReturnPath = true }
}

// WithMaxDistance stops the exploration at vertices farther than max.
// A negative max is reported as ErrBadMaxDistance by Dijkstra.
func WithMaxDistance[D cost.Distance](max D) Option[D] {
	return func(o *Options[D]) {
		if max < cost.Zero[D]() {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}
