package graph

import "fmt"

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g starting from startID, visiting
// each frontier in sorted neighbor order.
// Returns ErrGraphNil or ErrVertexNotFound for invalid input, a context
// error on cancellation, or any user-supplied hook error.
func BFS(g *Graph, startID string, opts ...Option) (*TraversalResult, error) {
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
	queue := make([]queueItem, 0, n)

	visited[startID] = true
	res.Depth[startID] = 0
	queue = append(queue, queueItem{id: startID})

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return nil, fmt.Errorf("graph: OnVisit error at %q: %w", item.id, err)
		}

		neighbors, err := g.Neighbors(item.id)
		if err != nil {
			return nil, err
		}
		for _, nbr := range neighbors {
			if !visited[nbr] {
				visited[nbr] = true
				res.Depth[nbr] = item.depth + 1
				res.Parent[nbr] = item.id
				queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})
			}
		}
	}

	return res, nil
}
