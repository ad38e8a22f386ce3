// Package graph declares the Graph type, traversal options, result
// structs, and sentinel errors.
package graph

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph construction and traversal.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrEmptyVertexID indicates a vertex ID that is the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex with an ID already present.
	ErrDuplicateVertex = errors.New("graph: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent
	// vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Graph is an unweighted adjacency-list graph. Undirected by default;
// construct with WithDirected for one-way edges.
// All methods are safe for concurrent use.
type Graph struct {
	mu       sync.RWMutex
	directed bool
	adjacent map[string]map[string]struct{}
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithDirected makes every edge one-way (from → to).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// New returns an empty graph.
func New(opts ...GraphOption) *Graph {
	g := &Graph{adjacent: make(map[string]map[string]struct{})}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks shared by the traversals.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns an Options with a background context and a no-op
// visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run per visit; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// buildOptions folds opts over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// TraversalResult holds the outcome of a DFS or BFS run:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges, or recursion
//     depth for DFS) from the start.
//   - Parent: map from vertex ID to its predecessor in the traversal tree.
type TraversalResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *TraversalResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("graph: no path to %q", dest)
	}

	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// newResult sizes a TraversalResult for n vertices.
func newResult(n int) *TraversalResult {
	return &TraversalResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
}
