// Package core: Graph method implementations.
//
// This file provides node and edge lifecycle operations plus the sorted
// accessors. Adjacency is a nested map: adjacency[u][v] = struct{}{},
// mirrored for the reverse direction, allowing constant-time existence,
// insertion, and deletion of edges.

package core

import (
	"cmp"
	"slices"
)

// AddNode inserts a node with the given label into the Graph.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(id T) {
	if _, exists := g.adjacency[id]; exists {
		return // no-op for existing node
	}
	g.adjacency[id] = make(map[T]struct{})
}

// HasNode reports whether a node with the given label exists.
// Complexity: O(1).
func (g *Graph[T]) HasNode(id T) bool {
	_, exists := g.adjacency[id]
	return exists
}

// RemoveNode deletes the node and all incident edges from the graph.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg(v)).
func (g *Graph[T]) RemoveNode(id T) error {
	neighbors, exists := g.adjacency[id]
	if !exists {
		return ErrNodeNotFound
	}
	// Drop the mirror entry held by each neighbor.
	for nbr := range neighbors {
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)

	return nil
}

// AddEdge inserts the undirected edge {u,v} into the graph.
// Both endpoints must already exist; unknown labels are rejected with
// ErrNodeNotFound rather than silently created, preserving the invariant
// that every edge endpoint is a member of the node set. Equal endpoints
// are rejected with ErrSelfLoop. Re-adding an existing edge is a no-op.
// Complexity: O(1).
func (g *Graph[T]) AddEdge(u, v T) error {
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.adjacency[u]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.adjacency[v]; !ok {
		return ErrNodeNotFound
	}
	// Mirror the pair both ways; duplicate inserts are naturally idempotent.
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}

	return nil
}

// RemoveEdge deletes the undirected edge {u,v} if present.
// Removing an absent edge (or referencing unknown labels) is a no-op.
// Complexity: O(1).
func (g *Graph[T]) RemoveEdge(u, v T) {
	if nbrs, ok := g.adjacency[u]; ok {
		delete(nbrs, v)
	}
	if nbrs, ok := g.adjacency[v]; ok {
		delete(nbrs, u)
	}
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Complexity: O(1).
func (g *Graph[T]) HasEdge(u, v T) bool {
	_, exists := g.adjacency[u][v]
	return exists
}

// Neighbors returns the labels adjacent to id, sorted ascending.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(d log d), where d is the node's degree.
func (g *Graph[T]) Neighbors(id T) ([]T, error) {
	nbrs, exists := g.adjacency[id]
	if !exists {
		return nil, ErrNodeNotFound
	}
	out := make([]T, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	slices.Sort(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph[T]) Degree(id T) (int, error) {
	nbrs, exists := g.adjacency[id]
	if !exists {
		return 0, ErrNodeNotFound
	}

	return len(nbrs), nil
}

// Nodes returns all node labels in sorted order.
// Complexity: O(V log V).
func (g *Graph[T]) Nodes() []T {
	ids := make([]T, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Edges returns all edges in canonical form (U < V), sorted by (U, V).
// Complexity: O(V + E log E).
func (g *Graph[T]) Edges() []Edge[T] {
	var out []Edge[T]
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			// Emit each mirrored pair exactly once.
			if u < v {
				out = append(out, Edge[T]{U: u, V: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge[T]) int {
		if c := cmp.Compare(a.U, b.U); c != 0 {
			return c
		}
		return cmp.Compare(a.V, b.V)
	})

	return out
}

// Order returns the number of nodes. Complexity: O(1).
func (g *Graph[T]) Order() int {
	return len(g.adjacency)
}

// Size returns the number of edges. Complexity: O(V).
func (g *Graph[T]) Size() int {
	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}
	// Every edge is mirrored, so the degree sum double-counts.
	return total / 2
}

// Clear resets the graph to the empty state.
func (g *Graph[T]) Clear() {
	g.adjacency = make(map[T]map[T]struct{})
}

// ClearEdges removes every edge while keeping all nodes.
// Complexity: O(V).
func (g *Graph[T]) ClearEdges() {
	for id := range g.adjacency {
		g.adjacency[id] = make(map[T]struct{})
	}
}

// Clone returns a deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := New[T]()
	for id, nbrs := range g.adjacency {
		set := make(map[T]struct{}, len(nbrs))
		for nbr := range nbrs {
			set[nbr] = struct{}{}
		}
		clone.adjacency[id] = set
	}

	return clone
}
