package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamondGraph builds:
//
//	0 --1.0--> 1 --1.0--> 3
//	0 --1.5--> 2 --0.5--> 3
//
// Both 0->3 paths weigh 2.0; the tie must break toward vertex 1.
func diamondGraph() *Graph {
	g := NewGraph(4)
	g.AddEdge(Edge{From: 0, To: 1, Weight: 1.0})
	g.AddEdge(Edge{From: 1, To: 3, Weight: 1.0})
	g.AddEdge(Edge{From: 0, To: 2, Weight: 1.5})
	g.AddEdge(Edge{From: 2, To: 3, Weight: 0.5})
	return g
}

func TestShortestPath_PicksCheaperRoute(t *testing.T) {
	g := NewGraph(4)
	ab := g.AddEdge(Edge{From: 0, To: 1, Weight: 5})
	g.AddEdge(Edge{From: 0, To: 2, Weight: 1})
	g.AddEdge(Edge{From: 2, To: 1, Weight: 1})
	bc := g.AddEdge(Edge{From: 1, To: 3, Weight: 1})

	path, ok := ShortestPath(g, 0, 3)
	require.True(t, ok)
	assert.InDelta(t, 3.0, path.Weight, 1e-9)
	assert.Equal(t, []EdgeID{1, 2, bc}, path.Edges)
	assert.NotContains(t, path.Edges, ab)
}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := diamondGraph()
	path, ok := ShortestPath(g, 2, 2)
	require.True(t, ok)
	assert.Zero(t, path.Weight)
	assert.Empty(t, path.Edges)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := NewGraph(3)
	g.AddEdge(Edge{From: 0, To: 1, Weight: 1})

	_, ok := ShortestPath(g, 0, 2)
	assert.False(t, ok)

	// Edges are directed: the reverse direction stays unreachable.
	_, ok = ShortestPath(g, 1, 0)
	assert.False(t, ok)
}

func TestShortestPath_EqualWeightTieBreaksOnVertexID(t *testing.T) {
	g := diamondGraph()
	path, ok := ShortestPath(g, 0, 3)
	require.True(t, ok)
	assert.InDelta(t, 2.0, path.Weight, 1e-9)
	require.Len(t, path.Edges, 2)
	assert.Equal(t, VertexID(1), g.Edge(path.Edges[0]).To)
}

func TestShortestPath_RepeatedQueriesAreIndependent(t *testing.T) {
	g := diamondGraph()
	first, ok := ShortestPath(g, 0, 3)
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := ShortestPath(g, 0, 3)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}
