// Package builder provides deterministic topology generators over
// core.Graph, handy for tests, examples, and demos.
//
// Every generator takes the node count n and an IDFunc mapping index i
// (0..n-1) to a label; nodes are added in ascending index order and edges
// are emitted in a fixed order, so repeated builds produce equal graphs.
//
// Errors:
//
//	ErrTooFewNodes - n is below the minimum for the requested topology.
//	ErrNilIDFunc   - no IDFunc was supplied.
package builder

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/knotenlab/knoten/core"
)

// Sentinel errors for graph construction.
var (
	// ErrTooFewNodes indicates n is below the topology's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrNilIDFunc indicates a nil IDFunc was supplied.
	ErrNilIDFunc = errors.New("builder: nil id func")
)

// Minimum node counts per topology.
const (
	minCompleteNodes = 1
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 1
)

// IDFunc maps a node index to its label.
type IDFunc[T cmp.Ordered] func(i int) T

// Letters is an IDFunc producing spreadsheet-style labels:
// 0→"A", 1→"B", …, 25→"Z", 26→"AA", 27→"AB", …
func Letters(i int) string {
	var buf []byte
	for i >= 0 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
		i = i/26 - 1
	}

	return string(buf)
}

// Index is the identity IDFunc for integer labels.
func Index(i int) int { return i }

// seed validates the generator inputs and returns a graph pre-populated
// with the n labels in index order.
func seed[T cmp.Ordered](n, minN int, id IDFunc[T], topology string) (*core.Graph[T], []T, error) {
	if id == nil {
		return nil, nil, fmt.Errorf("%s: %w", topology, ErrNilIDFunc)
	}
	if n < minN {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", topology, n, minN, ErrTooFewNodes)
	}
	g := core.New[T]()
	ids := make([]T, n)
	for i := 0; i < n; i++ {
		ids[i] = id(i)
		g.AddNode(ids[i])
	}

	return g, ids, nil
}

// Complete builds the complete simple graph K_n: every unordered pair
// {i,j} with i<j becomes an edge, in lexicographic (i,j) order.
// Requires n ≥ 1.
func Complete[T cmp.Ordered](n int, id IDFunc[T]) (*core.Graph[T], error) {
	g, ids, err := seed(n, minCompleteNodes, id, "Complete")
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(ids[i], ids[j]); err != nil {
				return nil, fmt.Errorf("Complete: edge %v--%v: %w", ids[i], ids[j], err)
			}
		}
	}

	return g, nil
}

// Path builds the path graph P_n: node i connects to node i+1.
// Requires n ≥ 1; P_1 is a single isolated node.
func Path[T cmp.Ordered](n int, id IDFunc[T]) (*core.Graph[T], error) {
	g, ids, err := seed(n, minPathNodes, id, "Path")
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(ids[i], ids[i+1]); err != nil {
			return nil, fmt.Errorf("Path: edge %v--%v: %w", ids[i], ids[i+1], err)
		}
	}

	return g, nil
}

// Cycle builds the cycle graph C_n: a path closed back to node 0.
// Requires n ≥ 3 (smaller rings would need loops or parallel edges).
func Cycle[T cmp.Ordered](n int, id IDFunc[T]) (*core.Graph[T], error) {
	g, ids, err := seed(n, minCycleNodes, id, "Cycle")
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		next := ids[(i+1)%n]
		if err = g.AddEdge(ids[i], next); err != nil {
			return nil, fmt.Errorf("Cycle: edge %v--%v: %w", ids[i], next, err)
		}
	}

	return g, nil
}

// Star builds the star graph S_n: node 0 is the hub, connected to every
// other node. Requires n ≥ 1; S_1 is a lone hub.
func Star[T cmp.Ordered](n int, id IDFunc[T]) (*core.Graph[T], error) {
	g, ids, err := seed(n, minStarNodes, id, "Star")
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(ids[0], ids[i]); err != nil {
			return nil, fmt.Errorf("Star: edge %v--%v: %w", ids[0], ids[i], err)
		}
	}

	return g, nil
}
