// Package graph provides a small adjacency-list graph with depth-first
// (recursive and iterative) and breadth-first traversal.
//
// What
//
//   - Graph stores string-identified vertices and unweighted edges,
//     undirected by default, directed with WithDirected().
//   - Neighbors returns adjacent vertex IDs in sorted order, so every
//     traversal is deterministic.
//   - DFS explores recursively; DFSIterative drives an explicit stack and
//     visits in the same order; BFS explores level by level.
//   - Each traversal returns a TraversalResult: visit Order, per-vertex
//     Depth, and Parent links for path reconstruction.
//   - An OnVisit hook may observe each visit and abort with an error.
//
// Why
//
//   - Reachability, connected components, and level layering in O(V + E).
//   - The iterative DFS demonstrates the stack discipline the recursive
//     form hides, while producing identical output.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) for all three traversals (plus neighbor sorting
//     at O(d log d) per vertex of degree d)
//   - Memory: O(V) for the stack/queue and result maps
//
// Usage
//
//	g := graph.New()
//	_ = g.AddEdge("A", "B")
//	_ = g.AddEdge("A", "C")
//	res, err := graph.BFS(g, "A")
//	if err != nil {
//	    // ErrGraphNil, ErrVertexNotFound, or a hook error
//	}
//	fmt.Println(res.Order) // [A B C]
//
// Options
//
//   - New(graph.WithDirected()): edges become one-way.
//   - WithContext(ctx): cancel a long traversal.
//   - WithOnVisit(fn):  hook per visit; returning an error aborts.
//
// Errors
//
//   - ErrGraphNil         the graph pointer is nil.
//   - ErrEmptyVertexID    a vertex ID is the empty string.
//   - ErrDuplicateVertex  AddVertex with an existing ID.
//   - ErrVertexNotFound   a referenced vertex does not exist.
//   - Wrapped user-supplied hook errors from OnVisit.
package graph
