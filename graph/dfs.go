package graph

import "fmt"

// DFS runs a recursive depth-first search on g starting from startID,
// visiting neighbors in sorted order.
// Returns ErrGraphNil or ErrVertexNotFound for invalid input, a context
// error on cancellation, or any user-supplied hook error.
func DFS(g *Graph, startID string, opts ...Option) (*TraversalResult, error) {
	o := buildOptions(opts)
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, startID)
	}

	res := newResult(g.VertexCount())
	visited := make(map[string]bool, g.VertexCount())

	if err := dfsVisit(g, startID, 0, &o, res, visited); err != nil {
		return nil, err
	}

	return res, nil
}

// dfsVisit is the recursive core: mark, record, hook, then descend into
// each unvisited neighbor.
func dfsVisit(g *Graph, id string, depth int, o *Options, res *TraversalResult, visited map[string]bool) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
	}

	visited[id] = true
	res.Depth[id] = depth
	res.Order = append(res.Order, id)
	if err := o.OnVisit(id, depth); err != nil {
		return fmt.Errorf("graph: OnVisit error at %q: %w", id, err)
	}

	neighbors, err := g.Neighbors(id)
	if err != nil {
		return err
	}
	for _, nbr := range neighbors {
		if !visited[nbr] {
			res.Parent[nbr] = id
			if err = dfsVisit(g, nbr, depth+1, o, res, visited); err != nil {
				return err
			}
		}
	}

	return nil
}

// stackItem pairs a vertex ID with its depth on the explicit DFS stack.
type stackItem struct {
	id    string
	depth int
}

// DFSIterative runs depth-first search with an explicit stack instead of
// recursion. Neighbors are pushed in reverse sorted order so the visit
// sequence matches DFS exactly.
func DFSIterative(g *Graph, startID string, opts ...Option) (*TraversalResult, error) {
	o := buildOptions(opts)
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, startID)
	}

	n := g.VertexCount()
	res := newResult(n)
	visited := make(map[string]bool, n)
	stack := make([]stackItem, 0, n)
	stack = append(stack, stackItem{id: startID})

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[item.id] {
			// a deeper path pushed this vertex before a shallower one reached it
			continue
		}

		visited[item.id] = true
		res.Depth[item.id] = item.depth
		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return nil, fmt.Errorf("graph: OnVisit error at %q: %w", item.id, err)
		}

		neighbors, err := g.Neighbors(item.id)
		if err != nil {
			return nil, err
		}
		for i := len(neighbors) - 1; i >= 0; i-- {
			nbr := neighbors[i]
			if !visited[nbr] {
				if _, seen := res.Parent[nbr]; !seen {
					res.Parent[nbr] = item.id
				}
				stack = append(stack, stackItem{id: nbr, depth: item.depth + 1})
			}
		}
	}

	return res, nil
}
