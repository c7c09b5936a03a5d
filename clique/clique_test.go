package clique_test

import (
	"testing"

	"github.com/arcweave/graphpipe/clique"
	"github.com/arcweave/graphpipe/core"
	"github.com/stretchr/testify/require"
)

func k4(t *testing.T) *core.Graph {
	g, err := core.Create(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.NoError(t, g.AddEdge(i, j, 1))
		}
	}
	return g
}

func TestFindMaxEmptyGraph(t *testing.T) {
	// core.Create rejects n=0; a destroyed graph has zero vertices.
	g, err := core.Create(1)
	require.NoError(t, err)
	g.Destroy()
	out := clique.FindMax(g)
	require.Empty(t, out.Vertices)
}

func TestFindMaxSingleVertex(t *testing.T) {
	g, err := core.Create(1)
	require.NoError(t, err)
	out := clique.FindMax(g)
	require.Equal(t, []int{0}, out.Vertices)
}

func TestFindMaxCompleteGraph(t *testing.T) {
	g := k4(t)
	out := clique.FindMax(g)
	require.Equal(t, 4, out.Size())
}

func TestFindMaxTwoTriangles(t *testing.T) {
	g, err := core.Create(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	out := clique.FindMax(g)
	require.Equal(t, 3, out.Size())
	require.Equal(t, []int{0, 1, 2}, out.Vertices)
}

func TestIsCliqueValidatesArbitrarySet(t *testing.T) {
	g := k4(t)
	ok, err := clique.IsClique(g, []int{0, 1, 2})
	require.NoError(t, err)
	require.True(t, ok)

	g2, err := core.Create(4)
	require.NoError(t, err)
	require.NoError(t, g2.AddEdge(0, 1, 1))
	ok2, err := clique.IsClique(g2, []int{0, 1, 2})
	require.NoError(t, err)
	require.False(t, ok2)
}

func TestIsCliqueTrivialForSmallSets(t *testing.T) {
	g := k4(t)
	ok, err := clique.IsClique(g, nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = clique.IsClique(g, []int{2})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIsCliqueRejectsOutOfRange(t *testing.T) {
	g := k4(t)
	_, err := clique.IsClique(g, []int{0, 9})
	require.ErrorIs(t, err, clique.ErrVertexOutOfRange)
}

func TestFindAllMaximalOnTwoTriangles(t *testing.T) {
	g, err := core.Create(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 4, 1))

	out := clique.FindAllMaximal(g)
	require.Len(t, out, 3) // {0,1,2}, {2,3}, {3,4}

	sizes := map[int]int{}
	for _, c := range out {
		sizes[c.Size()]++
	}
	require.Equal(t, 1, sizes[3])
	require.Equal(t, 2, sizes[2])
}

func TestCountOnFourVertexOneEdgeGraph(t *testing.T) {
	g, err := core.Create(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	out := clique.Count(g)
	require.Equal(t, 4, out.BySize[1])
	require.Equal(t, 1, out.BySize[2])
	require.Equal(t, 5, out.Total)
	require.Equal(t, 2, out.Largest)
}

func TestCountEmptyGraph(t *testing.T) {
	// core.Create rejects n=0; a destroyed graph has zero vertices.
	g, err := core.Create(1)
	require.NoError(t, err)
	g.Destroy()
	out := clique.Count(g)
	require.Equal(t, 0, out.Total)
}

func TestCountTriangles(t *testing.T) {
	g := k4(t)
	// K4 has C(4,3) = 4 triangles.
	require.Equal(t, 4, clique.CountTriangles(g))
}

func TestCountTrianglesBelowThreeVertices(t *testing.T) {
	g, err := core.Create(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.Equal(t, 0, clique.CountTriangles(g))
}
