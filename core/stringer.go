// Package core: human-readable graph formatting.

package core

import (
	"fmt"
	"strings"
)

// String renders the graph as a deterministic adjacency listing: one line
// per node in ascending order, each followed by its sorted neighbors.
//
//	A: B C
//	B: A
//	C: A
//
// The format is stable across calls for the same graph state, but it is
// not a compatibility surface; use the dot or codec packages for
// machine-readable output.
// Complexity: O(V log V + E log E).
func (g *Graph[T]) String() string {
	var b strings.Builder
	for _, id := range g.Nodes() {
		nbrs, _ := g.Neighbors(id) // node came from Nodes(), cannot be absent
		fmt.Fprintf(&b, "%v:", id)
		for _, nbr := range nbrs {
			fmt.Fprintf(&b, " %v", nbr)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
