// Package knoten is a small in-memory toolkit for building, querying,
// and exporting undirected graphs over arbitrary ordered label types.
//
// What's inside?
//
//	A compact, generic library that brings together:
//		• Core primitives: a Graph[T] container with node & edge lifecycle
//		• Structural predicates: emptiness, completeness, subgraph relations
//		• Set operations: union & difference of graphs
//		• Traversals: BFS, DFS, undirected cycle detection
//		• Export: deterministic DOT text, PNG rasterization, YAML documents
//		• Generators: complete, path, cycle and star topologies
//
// Everything is organized under small single-purpose subpackages:
//
//	core/    — the generic Graph[T] container, predicates & set operations
//	bfs/     — breadth-first traversal with hooks and depth limits
//	dfs/     — depth-first traversal, forest mode, cycle detection
//	dot/     — Graphviz DOT rendering and PNG rasterization
//	codec/   — YAML graph documents (encode/decode)
//	builder/ — deterministic topology generators for tests and demos
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╳ │
//	    C───D
//
//	is the complete graph K4: four nodes, six edges, IsComplete() == true.
//
// The container is single-writer: it performs no internal locking, and
// concurrent mutation requires external synchronization.
//
//	go get github.com/knotenlab/knoten
package knoten
