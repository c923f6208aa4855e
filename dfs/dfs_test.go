package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kipple/core"
	"github.com/katalvlaran/kipple/dfs"
)

func build(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := 0; id < n; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

// feedbackGraph: chain 1→2→3→4 with a feedback 4→2 and a sink edge 3→0.
func feedbackGraph(t *testing.T) *core.Graph {
	return build(t, 5, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2}, [2]int{3, 0})
}

func TestNilGraph(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.BackEdges(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	has, cycles, err := dfs.DetectCycles(nil)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

func TestTopologicalSortDAG(t *testing.T) {
	g := build(t, 4, [2]int{1, 3}, [2]int{3, 0}, [2]int{1, 2}, [2]int{2, 0})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)

	pos := map[int]int{}
	for i, v := range order {
		pos[v] = i
	}
	require.Len(t, order, 4)
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %d→%d", e.From, e.To)
	}
}

func TestTopologicalSortCycle(t *testing.T) {
	_, err := dfs.TopologicalSort(feedbackGraph(t))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSortIgnoringBackEdges(t *testing.T) {
	order, err := dfs.TopologicalSort(feedbackGraph(t), dfs.WithIgnoreBackEdges())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 0}, order)
}

func TestTopologicalSortCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(feedbackGraph(t), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetectCycles(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(feedbackGraph(t))
	require.NoError(t, err)
	require.True(t, has)
	assert.Equal(t, [][]int{{2, 3, 4, 2}}, cycles)

	back, err := dfs.BackEdges(feedbackGraph(t))
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, 4, back[0].From)
	assert.Equal(t, 2, back[0].To)
}

func TestDetectCyclesAcyclic(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(build(t, 3, [2]int{2, 1}, [2]int{1, 0}))
	require.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

func TestDetectCyclesSorted(t *testing.T) {
	// two independent loops: 5→6→5 and 1→2→3→1
	g := build(t, 7, [2]int{5, 6}, [2]int{6, 5}, [2]int{3, 1}, [2]int{1, 2}, [2]int{2, 3})
	has, cycles, err := dfs.DetectCycles(g)
	require.NoError(t, err)
	require.True(t, has)
	assert.Equal(t, [][]int{{1, 2, 3, 1}, {5, 6, 5}}, cycles)
}
