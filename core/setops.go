// Package core: set operations producing new graphs.

package core

import "cmp"

// Union returns a new graph containing every node and edge of a and b.
// Neither input is mutated.
// Complexity: O(V_a + E_a + V_b + E_b).
func Union[T cmp.Ordered](a, b *Graph[T]) *Graph[T] {
	out := a.Clone()
	for id, nbrs := range b.adjacency {
		if _, ok := out.adjacency[id]; !ok {
			out.adjacency[id] = make(map[T]struct{}, len(nbrs))
		}
		for nbr := range nbrs {
			out.adjacency[id][nbr] = struct{}{}
		}
	}

	return out
}

// Difference returns a new graph derived from a by removing every edge of
// b, then dropping any node of b left isolated in the result. Nodes of a
// that b does not mention are untouched even when isolated.
// Neither input is mutated.
// Complexity: O(V_a + E_a + V_b + E_b).
func Difference[T cmp.Ordered](a, b *Graph[T]) *Graph[T] {
	out := a.Clone()
	for id, nbrs := range b.adjacency {
		if _, ok := out.adjacency[id]; !ok {
			continue
		}
		for nbr := range nbrs {
			out.RemoveEdge(id, nbr)
		}
		if len(out.adjacency[id]) == 0 {
			delete(out.adjacency, id)
		}
	}

	return out
}
