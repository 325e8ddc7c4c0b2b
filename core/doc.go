// Package core provides the generic, in-memory Graph container together
// with its structural predicates and set operations.
//
// The Graph G = (V,E) is simple and undirected:
//
//   - Nodes are unique labels of any ordered type T (cmp.Ordered).
//   - Edges are unordered pairs {u,v} of distinct existing nodes; adjacency
//     is mirrored internally so a single AddEdge/RemoveEdge affects both
//     directions.
//   - No self-loops, no parallel edges, no weights.
//   - Deterministic iteration — Nodes(), Edges(), Neighbors() return
//     sorted results.
//
// Lifecycle rules:
//
//	AddNode(id)       // idempotent, duplicate insert is a no-op
//	RemoveNode(id)    // removes the node and all incident edges
//	AddEdge(u, v)     // both endpoints must already exist; idempotent
//	RemoveEdge(u, v)  // no-op when the edge is absent
//
// Errors:
//
//	ErrNodeNotFound - an operation referenced a non-existent node.
//	ErrSelfLoop     - AddEdge was called with identical endpoints.
//
// Concurrency: the container performs no internal locking. It is
// single-writer; guard it externally if you must mutate it from multiple
// goroutines.
package core
