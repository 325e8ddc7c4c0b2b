// Package dfs: undirected cycle detection.

package dfs

import (
	"cmp"

	"github.com/knotenlab/knoten/core"
)

// HasCycle reports whether g contains a cycle. It runs a parent-tracking
// depth-first sweep over every component: encountering a visited neighbor
// that is not the node we arrived from closes a cycle. Since the graph is
// simple and undirected, this check is exact.
// Returns ErrGraphNil for a nil graph.
// Complexity: O(V + E).
func HasCycle[T cmp.Ordered](g *core.Graph[T]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	visited := make(map[T]bool, g.Order())
	parent := make(map[T]T, g.Order())

	var walk func(id T) bool
	walk = func(id T) bool {
		visited[id] = true
		neighbors, _ := g.Neighbors(id) // id came from g.Nodes(), cannot be absent
		for _, nbr := range neighbors {
			if !visited[nbr] {
				parent[nbr] = id
				if walk(nbr) {
					return true
				}
				continue
			}
			// A visited neighbor other than our tree parent closes a cycle.
			if p, ok := parent[id]; !ok || p != nbr {
				return true
			}
		}

		return false
	}

	for _, id := range g.Nodes() {
		if !visited[id] && walk(id) {
			return true, nil
		}
	}

	return false, nil
}
