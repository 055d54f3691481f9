package amphipod

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aocsearch/astar"
)

// Solve returns the least total energy needed to organize b. The returned
// Result carries the search counters and, with astar.WithReturnPath, every
// intermediate burrow.
func Solve(b Burrow, opts ...astar.Option[Burrow, int]) (astar.Result[Burrow, int], error) {
	if b.depth < 1 {
		return astar.Result[Burrow, int]{}, fmt.Errorf("%w: empty burrow", ErrBadInput)
	}

	res, err := astar.Search[Burrow, int](b, Burrow.Organized, Burrow.Heuristic, opts...)
	if errors.Is(err, astar.ErrNoPath) {
		return res, fmt.Errorf("amphipod: burrow cannot be organized: %w", err)
	}
	return res, err
}
