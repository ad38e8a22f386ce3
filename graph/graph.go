package graph

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new isolated vertex.
// Returns ErrEmptyVertexID or ErrDuplicateVertex.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacent[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	g.adjacent[id] = make(map[string]struct{})

	return nil
}

// AddEdge connects from and to, creating either endpoint on demand.
// On an undirected graph the edge is stored in both directions.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(from)
	g.ensure(to)
	g.adjacent[from][to] = struct{}{}
	if !g.directed {
		g.adjacent[to][from] = struct{}{}
	}

	return nil
}

// ensure creates the adjacency set for id if missing. Caller holds mu.
func (g *Graph) ensure(id string) {
	if _, ok := g.adjacent[id]; !ok {
		g.adjacent[id] = make(map[string]struct{})
	}
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacent[id]

	return ok
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacent)
}

// Vertices returns all vertex IDs in sorted order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacent))
	for id := range g.adjacent {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Neighbors returns the IDs adjacent to id in sorted order, which keeps
// every traversal deterministic. Returns ErrVertexNotFound for unknown IDs.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacent[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]string, 0, len(set))
	for nbr := range set {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}
