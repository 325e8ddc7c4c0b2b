// Package dfs provides tunable options, errors, and the result type for
// depth-first search over a core.Graph.

package dfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior via functional arguments.
type Option[T cmp.Ordered] func(*Options[T])

// Options holds parameters and callbacks to customize DFS execution.
type Options[T cmp.Ordered] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is a pre-order hook, called on node discovery. An error
	// aborts the traversal.
	OnVisit func(id T, depth int) error

	// OnExit is a post-order hook, called after a node's descendants have
	// been explored. An error aborts the traversal.
	OnExit func(id T, depth int) error

	// MaxDepth, if > 0, stops recursing beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip an edge curr→next by returning false.
	FilterNeighbor func(curr, next T) bool

	// FullTraversal restarts the search from every unvisited node so that
	// disconnected components are covered; the start argument then only
	// seeds the first tree.
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no depth limit, no filtering, single-source traversal, no-op hooks.
func DefaultOptions[T cmp.Ordered]() Options[T] {
	return Options[T]{
		Ctx:            context.Background(),
		OnVisit:        func(T, int) error { return nil },
		OnExit:         func(T, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ T) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T cmp.Ordered](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the pre-order hook.
func WithOnVisit[T cmp.Ordered](fn func(id T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers the post-order hook.
func WithOnExit[T cmp.Ordered](fn func(id T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithMaxDepth stops recursion at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T cmp.Ordered](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[T cmp.Ordered](fn func(curr, next T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithFullTraversal covers every component, not just the start's tree.
func WithFullTraversal[T cmp.Ordered]() Option[T] {
	return func(o *Options[T]) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal:
//   - Order: nodes in pre-order (discovery) sequence.
//   - Depth: recursion depth per reached node.
//   - Parent: predecessor in the DFS forest; roots have no entry.
type Result[T cmp.Ordered] struct {
	Order  []T
	Depth  map[T]int
	Parent map[T]T
}
