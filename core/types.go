// Package core: central Graph and Edge types.
//
// This file declares the Edge value type, the Graph container, sentinel
// errors, and the New constructor. Method implementations live in
// methods.go; predicates and set operations in predicates.go and setops.go.

package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge with identical endpoints was rejected.
	ErrSelfLoop = errors.New("core: self-loops not allowed")
)

// Edge is an undirected edge in canonical form: U is the smaller endpoint,
// V the greater (U < V always holds for edges produced by Graph.Edges).
type Edge[T cmp.Ordered] struct {
	// U is the smaller endpoint label.
	U T

	// V is the greater endpoint label.
	V T
}

// Graph is the core in-memory graph container, generic over the node
// label type T. T needs a total order so that accessors can return
// deterministic, sorted results.
//
// Adjacency is stored as a map of mirrored neighbor sets:
// adjacency[u][v] exists iff adjacency[v][u] exists iff edge {u,v} exists.
// Every neighbor referenced in a set is itself a key of the outer map.
type Graph[T cmp.Ordered] struct {
	adjacency map[T]map[T]struct{}
}

// New creates an empty Graph.
// Complexity: O(1).
func New[T cmp.Ordered]() *Graph[T] {
	return &Graph[T]{adjacency: make(map[T]map[T]struct{})}
}
