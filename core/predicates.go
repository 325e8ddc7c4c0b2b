// Package core: structural predicates over a Graph.
//
// Predicates never mutate the graph and rely on the mirrored-adjacency
// invariant (adjacency[u][v] exists iff adjacency[v][u] exists).

package core

import (
	"cmp"
	"maps"
)

// IsEmpty reports whether the graph has no nodes.
// By the endpoint invariant the edge set is then empty as well.
// Complexity: O(1).
func (g *Graph[T]) IsEmpty() bool {
	return len(g.adjacency) == 0
}

// IsTrivial reports whether the graph consists of exactly one node and
// no edges. Complexity: O(1).
func (g *Graph[T]) IsTrivial() bool {
	if len(g.adjacency) != 1 {
		return false
	}
	for _, nbrs := range g.adjacency {
		if len(nbrs) != 0 {
			return false
		}
	}

	return true
}

// IsComplete reports whether every pair of distinct nodes is connected by
// an edge. Graphs with zero or one node are trivially complete.
//
// Since the graph is simple and adjacency is mirrored, completeness is
// equivalent to every node having degree n-1.
// Complexity: O(V).
func (g *Graph[T]) IsComplete() bool {
	n := len(g.adjacency)
	if n <= 1 {
		return true
	}
	for _, nbrs := range g.adjacency {
		if len(nbrs) != n-1 {
			return false
		}
	}

	return true
}

// Equal reports whether a and b contain exactly the same nodes and edges.
// Complexity: O(V + E).
func Equal[T cmp.Ordered](a, b *Graph[T]) bool {
	if len(a.adjacency) != len(b.adjacency) {
		return false
	}
	for id, nbrs := range a.adjacency {
		other, ok := b.adjacency[id]
		if !ok || !maps.Equal(nbrs, other) {
			return false
		}
	}

	return true
}

// IsSubgraph reports whether sub's nodes and edges are all contained in g.
// Complexity: O(V_sub + E_sub).
func IsSubgraph[T cmp.Ordered](g, sub *Graph[T]) bool {
	for id, nbrs := range sub.adjacency {
		super, ok := g.adjacency[id]
		if !ok {
			return false
		}
		for nbr := range nbrs {
			if _, ok = super[nbr]; !ok {
				return false
			}
		}
	}

	return true
}

// IsProperSubgraph reports whether sub is a subgraph of g and not equal
// to g. Complexity: O(V + E).
func IsProperSubgraph[T cmp.Ordered](g, sub *Graph[T]) bool {
	return !Equal(g, sub) && IsSubgraph(g, sub)
}

// IsSpanningSubgraph reports whether sub is a subgraph of g covering the
// same node set. Complexity: O(V + E).
func IsSpanningSubgraph[T cmp.Ordered](g, sub *Graph[T]) bool {
	return len(g.adjacency) == len(sub.adjacency) && IsSubgraph(g, sub)
}
