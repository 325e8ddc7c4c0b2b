// Package bfs implements breadth-first search over a core.Graph,
// returning hop-count shortest-path distances, parent links, and visit
// order. Neighbors expand in sorted order, so traversal is deterministic.

package bfs

import (
	"cmp"
	"fmt"

	"github.com/knotenlab/knoten/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[T cmp.Ordered] struct {
	id    T
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T cmp.Ordered] struct {
	graph   *core.Graph[T]
	opts    Options[T]
	queue   []queueItem[T]
	visited map[T]bool
	res     *Result[T]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Returns ErrGraphNil or ErrStartNotFound
// for invalid input, ErrOptionViolation for bad options, or any
// user-supplied hook error. Cancellation via WithContext is honored
// between visits.
// Complexity: O(V + E) plus the cost of sorting each neighbor set.
func BFS[T cmp.Ordered](g *core.Graph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	n := g.Order()
	w := &walker[T]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[T], 0, n),
		visited: make(map[T]bool, n),
		res: &Result[T]{
			Order:  make([]T, 0, n),
			Depth:  make(map[T]int, n),
			Parent: make(map[T]T, n),
		},
	}

	// Seed the queue with the start node (no parent entry).
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[T]{id: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		// Cancellation check, once per dequeue.
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors expands item's neighbors in sorted order, applying
// filtering and the depth limit, and enqueues each unseen neighbor.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		// Visited nodes come from the graph itself, so this only fires if
		// the graph is mutated mid-traversal.
		return fmt.Errorf("bfs: neighbors of %v: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.visited[nbr] = true
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem[T]{id: nbr, depth: nextDepth})
	}

	return nil
}
