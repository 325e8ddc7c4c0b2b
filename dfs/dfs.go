// Package dfs implements depth-first search (single-source and forest)
// over a core.Graph, with pre/post-order hooks, depth limiting, neighbor
// filtering, and cancellation. Neighbors recurse in sorted order, so the
// traversal is deterministic.

package dfs

import (
	"cmp"
	"fmt"

	"github.com/knotenlab/knoten/core"
)

// walker encapsulates mutable DFS state.
type walker[T cmp.Ordered] struct {
	graph   *core.Graph[T]
	opts    Options[T]
	visited map[T]bool
	res     *Result[T]
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// all disconnected components (the forest roots being g.Nodes() order);
// otherwise it explores only the tree reachable from start.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, a context
// error, or any error returned by a hook.
// Complexity: O(V + E) plus the cost of sorting each neighbor set.
func DFS[T cmp.Ordered](g *core.Graph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !o.FullTraversal && !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	n := g.Order()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		visited: make(map[T]bool, n),
		res: &Result[T]{
			Order:  make([]T, 0, n),
			Depth:  make(map[T]int, n),
			Parent: make(map[T]T, n),
		},
	}

	if o.FullTraversal {
		// Seed from the start node first when it exists, then sweep the
		// remaining nodes in sorted order.
		if g.HasNode(start) {
			if err := w.traverse(start, 0); err != nil {
				return w.res, err
			}
		}
		for _, id := range g.Nodes() {
			if !w.visited[id] {
				if err := w.traverse(id, 0); err != nil {
					return w.res, err
				}
			}
		}

		return w.res, nil
	}

	return w.res, w.traverse(start, 0)
}

// traverse visits id at the given depth and recurses into its neighbors.
func (w *walker[T]) traverse(id T, depth int) error {
	// Cancellation check, once per node.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %v: %w", id, err)
	}

	// Depth limit: record the node but do not expand beyond the cap.
	if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
		neighbors, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %v: %w", id, err)
		}
		for _, nbr := range neighbors {
			if w.visited[nbr] || !w.opts.FilterNeighbor(id, nbr) {
				continue
			}
			w.res.Parent[nbr] = id
			if err = w.traverse(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	if err := w.opts.OnExit(id, depth); err != nil {
		return fmt.Errorf("dfs: OnExit error at %v: %w", id, err)
	}

	return nil
}
