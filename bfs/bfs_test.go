package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocsearch/bfs"
	"github.com/katalvlaran/aocsearch/digraph"
)

type vertex = digraph.Vertex[string, int]

// diamond builds A→B, A→C, B→D, C→D, D→E with weights that BFS must ignore.
func diamond(t *testing.T) *digraph.Digraph[string, int] {
	t.Helper()
	g := digraph.New[string, int]()
	for _, e := range []struct {
		from, to string
		w        int
	}{
		{"A", "B", 9}, {"A", "C", 1}, {"B", "D", 1}, {"C", "D", 1}, {"D", "E", 5},
	} {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}
	return g
}

func ids(states []vertex) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.ID
	}
	return out
}

// TestWalk_OrderDepthParent covers visit order, hop distances and the BFS tree.
func TestWalk_OrderDepthParent(t *testing.T) {
	g := diamond(t)
	res, err := bfs.Walk[vertex, int](g.At("A"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ids(res.Order))
	assert.Equal(t, 0, res.Depth[g.At("A")])
	assert.Equal(t, 2, res.Depth[g.At("D")])
	assert.Equal(t, 3, res.Depth[g.At("E")])
	assert.Equal(t, g.At("B"), res.Parent[g.At("D")], "first discoverer wins")

	path, err := res.PathTo(g.At("E"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E"}, ids(path))

	_, err = res.PathTo(g.At("Z"))
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestWalk_MaxDepth(t *testing.T) {
	g := diamond(t)
	res, err := bfs.Walk[vertex, int](g.At("A"), bfs.WithMaxDepth[vertex](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids(res.Order))

	_, err = bfs.Walk[vertex, int](g.At("A"), bfs.WithMaxDepth[vertex](-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestWalk_Filter(t *testing.T) {
	g := diamond(t)
	res, err := bfs.Walk[vertex, int](g.At("A"), bfs.WithFilterNeighbor(func(_, next vertex) bool {
		return next.ID != "B"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E"}, ids(res.Order))
}

func TestWalk_OnVisitAbort(t *testing.T) {
	g := diamond(t)
	stop := errors.New("stop")
	res, err := bfs.Walk[vertex, int](g.At("A"), bfs.WithOnVisit(func(s vertex, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(res.Order))
}

func TestWalk_Cancelled(t *testing.T) {
	g := diamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Walk[vertex, int](g.At("A"), bfs.WithContext[vertex](ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestWalk_Cycle(t *testing.T) {
	g := digraph.New[int, int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%5, 1))
	}
	res, err := bfs.Walk[digraph.Vertex[int, int], int](g.At(0))
	require.NoError(t, err)
	require.Len(t, res.Order, 5)
	assert.Equal(t, 4, res.Depth[g.At(4)])
}
