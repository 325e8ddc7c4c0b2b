// Package core_test verifies Graph lifecycle and accessor contracts:
// idempotent inserts, endpoint validation, mirrored edge removal, and
// the deterministic ordering of Nodes/Edges/Neighbors.

package core_test

import (
	"testing"

	"github.com/knotenlab/knoten/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddRemoveNode(t *testing.T) {
	t.Parallel()

	g := core.New[string]()

	g.AddNode("A")
	assert.True(t, g.HasNode("A"))

	// Duplicate insert must be a no-op.
	g.AddNode("A")
	assert.Equal(t, 1, g.Order(), "duplicate AddNode must not change node count")

	// Removing a missing node is an error.
	require.ErrorIs(t, g.RemoveNode("X"), core.ErrNodeNotFound)

	require.NoError(t, g.RemoveNode("A"))
	assert.False(t, g.HasNode("A"))
	assert.True(t, g.IsEmpty())
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNode("A")
	g.AddNode("B")

	// Unknown endpoints are rejected, never auto-created.
	require.ErrorIs(t, g.AddEdge("A", "X"), core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge("X", "B"), core.ErrNodeNotFound)
	assert.False(t, g.HasNode("X"), "rejected AddEdge must not create nodes")

	// Self-loops are rejected.
	require.ErrorIs(t, g.AddEdge("A", "A"), core.ErrSelfLoop)

	require.NoError(t, g.AddEdge("A", "B"))
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"), "edges are symmetric")

	// Re-adding an existing edge is a no-op.
	require.NoError(t, g.AddEdge("B", "A"))
	assert.Equal(t, 1, g.Size(), "duplicate AddEdge must not change edge count")
}

func TestGraph_RemoveEdgeRoundTrip(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNode("A")
	g.AddNode("B")
	g.AddNode("C")
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	before := g.Edges()

	// AddEdge then RemoveEdge restores the prior edge set.
	require.NoError(t, g.AddEdge("A", "C"))
	g.RemoveEdge("C", "A") // removal is order-insensitive
	assert.Equal(t, before, g.Edges())

	// Removing an absent edge is a silent no-op.
	g.RemoveEdge("A", "C")
	g.RemoveEdge("A", "X")
	assert.Equal(t, before, g.Edges())
}

func TestGraph_RemoveNodeCascades(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	for _, id := range []string{"A", "B", "C"} {
		g.AddNode(id)
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("B", "C"))

	require.NoError(t, g.RemoveNode("A"))

	assert.False(t, g.HasEdge("B", "A"), "incident edges must be gone")
	assert.False(t, g.HasEdge("C", "A"))
	assert.True(t, g.HasEdge("B", "C"), "unrelated edges survive")
	assert.Equal(t, 1, g.Size())
}

func TestGraph_SortedAccessors(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	for _, id := range []string{"D", "B", "A", "C"} {
		g.AddNode(id)
	}
	require.NoError(t, g.AddEdge("D", "A"))
	require.NoError(t, g.AddEdge("C", "B"))
	require.NoError(t, g.AddEdge("B", "A"))

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
	assert.Equal(t, []core.Edge[string]{
		{U: "A", V: "B"},
		{U: "A", V: "D"},
		{U: "B", V: "C"},
	}, g.Edges(), "edges are canonical (U < V) and sorted")

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, nbrs)

	_, err = g.Neighbors("X")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_OrderSizeDegree(t *testing.T) {
	t.Parallel()

	g := core.New[int]()
	for i := 1; i <= 4; i++ {
		g.AddNode(i)
	}
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())

	deg, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.Degree(99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestGraph_ClearAndClearEdges(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNode("A")
	g.AddNode("B")
	require.NoError(t, g.AddEdge("A", "B"))

	g.ClearEdges()
	assert.Equal(t, 2, g.Order(), "ClearEdges keeps nodes")
	assert.Equal(t, 0, g.Size())

	g.Clear()
	assert.True(t, g.IsEmpty())
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNode("A")
	g.AddNode("B")
	require.NoError(t, g.AddEdge("A", "B"))

	clone := g.Clone()
	require.True(t, core.Equal(g, clone))

	// Mutating the clone must not leak into the original.
	clone.AddNode("C")
	clone.RemoveEdge("A", "B")
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasNode("C"))
}
