package builder_test

import (
	"testing"

	"github.com/knotenlab/knoten/builder"
	"github.com/knotenlab/knoten/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, builder.Letters(tc.in), "Letters(%d)", tc.in)
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()

	g, err := builder.Complete(4, builder.Letters)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
	assert.Equal(t, 6, g.Size(), "K4 has n(n-1)/2 edges")
	assert.True(t, g.IsComplete())

	// K1 is a single node and trivially complete.
	one, err := builder.Complete(1, builder.Letters)
	require.NoError(t, err)
	assert.True(t, one.IsTrivial())
	assert.True(t, one.IsComplete())

	_, err = builder.Complete(0, builder.Letters)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestPath(t *testing.T) {
	t.Parallel()

	g, err := builder.Path(4, builder.Index)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 3))
	assert.False(t, g.HasEdge(0, 3))

	single, err := builder.Path(1, builder.Index)
	require.NoError(t, err)
	assert.True(t, single.IsTrivial())
}

func TestCycle(t *testing.T) {
	t.Parallel()

	g, err := builder.Cycle(5, builder.Letters)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 5, g.Size())
	assert.True(t, g.HasEdge("E", "A"), "the ring closes back to the first node")

	// C3 is the triangle, which is also K3.
	tri, err := builder.Cycle(3, builder.Letters)
	require.NoError(t, err)
	assert.True(t, tri.IsComplete())

	_, err = builder.Cycle(2, builder.Letters)
	require.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestStar(t *testing.T) {
	t.Parallel()

	g, err := builder.Star(5, builder.Letters)
	require.NoError(t, err)

	hub, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, hub)

	leaf, err := g.Degree("C")
	require.NoError(t, err)
	assert.Equal(t, 1, leaf)
}

func TestDeterministicBuilds(t *testing.T) {
	t.Parallel()

	a, err := builder.Complete(6, builder.Letters)
	require.NoError(t, err)
	b, err := builder.Complete(6, builder.Letters)
	require.NoError(t, err)
	assert.True(t, core.Equal(a, b))
}

func TestNilIDFunc(t *testing.T) {
	t.Parallel()

	_, err := builder.Path[string](3, nil)
	require.ErrorIs(t, err, builder.ErrNilIDFunc)
}
