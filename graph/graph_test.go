package graph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/algokit/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_Build covers vertex/edge insertion and the construction errors.
func TestGraph_Build(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("A"))
	assert.ErrorIs(t, g.AddVertex("A"), graph.ErrDuplicateVertex)
	assert.ErrorIs(t, g.AddVertex(""), graph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("", "B"), graph.ErrEmptyVertexID)

	// AddEdge creates endpoints on demand
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	assert.True(t, g.HasVertex("C"))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	// undirected: both directions present
	nbrs, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nbrs)

	if _, err = g.Neighbors("missing"); !errors.Is(err, graph.ErrVertexNotFound) {
		t.Errorf("Neighbors(missing): want ErrVertexNotFound, got %v", err)
	}
}

// TestGraph_Directed verifies one-way adjacency under WithDirected.
func TestGraph_Directed(t *testing.T) {
	g := graph.New(graph.WithDirected())
	require.NoError(t, g.AddEdge("A", "B"))

	out, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, out)

	back, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, back)
}

// testDiamond builds A→{B,C}→D plus a tail D→E.
func testDiamond(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}, {"D", "E"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestDFS_Order checks recursive preorder over sorted adjacency.
func TestDFS_Order(t *testing.T) {
	res, err := graph.DFS(testDiamond(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, "B", res.Parent["D"])
}

// TestDFSIterative_MatchesRecursive pins the explicit-stack variant to the
// recursive visit order.
func TestDFSIterative_MatchesRecursive(t *testing.T) {
	g := testDiamond(t)

	rec, err := graph.DFS(g, "A")
	require.NoError(t, err)
	it, err := graph.DFSIterative(g, "A")
	require.NoError(t, err)

	if diff := cmp.Diff(rec.Order, it.Order); diff != "" {
		t.Errorf("visit order mismatch (-recursive +iterative):\n%s", diff)
	}
	if diff := cmp.Diff(rec.Depth, it.Depth); diff != "" {
		t.Errorf("depth mismatch (-recursive +iterative):\n%s", diff)
	}
}

// TestBFS_Layers checks level ordering and parent links on the diamond.
func TestBFS_Layers(t *testing.T) {
	res, err := graph.BFS(testDiamond(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, 1, res.Depth["C"])
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, 3, res.Depth["E"])
	// D is reached from B, the first of its sorted predecessors
	assert.Equal(t, "B", res.Parent["D"])

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "E"}, path)

	if _, err = res.PathTo("Z"); err == nil {
		t.Error("PathTo(Z): want error for unreached vertex")
	}
}

// TestTraversal_Errors covers nil graphs, missing starts, hook aborts, and
// cancellation for all three traversals.
func TestTraversal_Errors(t *testing.T) {
	type traversal func(*graph.Graph, string, ...graph.Option) (*graph.TraversalResult, error)
	traversals := map[string]traversal{
		"DFS":          graph.DFS,
		"DFSIterative": graph.DFSIterative,
		"BFS":          graph.BFS,
	}

	g := testDiamond(t)
	hookErr := errors.New("stop here")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, run := range traversals {
		t.Run(name, func(t *testing.T) {
			if _, err := run(nil, "A"); !errors.Is(err, graph.ErrGraphNil) {
				t.Errorf("nil graph: want ErrGraphNil, got %v", err)
			}
			if _, err := run(g, "missing"); !errors.Is(err, graph.ErrVertexNotFound) {
				t.Errorf("missing start: want ErrVertexNotFound, got %v", err)
			}

			res, err := run(g, "A", graph.WithOnVisit(func(id string, _ int) error {
				if id == "D" {
					return hookErr
				}
				return nil
			}))
			if !errors.Is(err, hookErr) {
				t.Errorf("hook abort: want wrapped hook error, got %v", err)
			}
			assert.Nil(t, res, "no partial result on hook abort")

			res, err = run(g, "A", graph.WithContext(ctx))
			if !errors.Is(err, context.Canceled) {
				t.Errorf("cancelled ctx: want context.Canceled, got %v", err)
			}
			assert.Nil(t, res, "no partial result on cancellation")
		})
	}
}

// TestTraversal_Disconnected ensures only the start component is explored.
func TestTraversal_Disconnected(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddEdge("P", "Q"))

	res, err := graph.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, res.Order)

	res, err = graph.DFS(g, "P")
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q"}, res.Order)
}

// TestTraversal_Cycle ensures cycles terminate and depths stay minimal
// under BFS.
func TestTraversal_Cycle(t *testing.T) {
	g := graph.New()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	res, err := graph.BFS(g, "A")
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
	assert.Equal(t, 2, res.Depth["C"])

	res, err = graph.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
}
