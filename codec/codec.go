// Package codec encodes a core.Graph to and from YAML documents of the
// form:
//
//	nodes:
//	  - A
//	  - B
//	edges:
//	  - u: A
//	    v: B
//
// Encoding is deterministic (sorted nodes, sorted canonical edges), so
// encoding the same graph state twice yields identical documents.
// Decoding rebuilds the graph through AddNode/AddEdge, which enforces the
// endpoint invariant: an edge naming an unlisted node fails with
// core.ErrNodeNotFound.
package codec

import (
	"cmp"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/knotenlab/knoten/core"
)

// ErrNilGraph is returned when encoding a nil graph.
var ErrNilGraph = errors.New("codec: graph is nil")

// document is the YAML shape of a graph.
type document[T cmp.Ordered] struct {
	Nodes []T           `yaml:"nodes"`
	Edges []edgeItem[T] `yaml:"edges,omitempty"`
}

// edgeItem is one undirected edge entry; u/v carry the canonical pair.
type edgeItem[T cmp.Ordered] struct {
	U T `yaml:"u"`
	V T `yaml:"v"`
}

// snapshot converts g into its document form.
func snapshot[T cmp.Ordered](g *core.Graph[T]) document[T] {
	doc := document[T]{Nodes: g.Nodes()}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeItem[T]{U: e.U, V: e.V})
	}

	return doc
}

// restore rebuilds a graph from its document form.
func restore[T cmp.Ordered](doc document[T]) (*core.Graph[T], error) {
	g := core.New[T]()
	for _, id := range doc.Nodes {
		g.AddNode(id)
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("codec: edge %v--%v: %w", e.U, e.V, err)
		}
	}

	return g, nil
}

// Encode writes g as a YAML document to w.
func Encode[T cmp.Ordered](g *core.Graph[T], w io.Writer) error {
	if g == nil {
		return ErrNilGraph
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(snapshot(g)); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}

	return enc.Close()
}

// Marshal returns g as YAML bytes.
func Marshal[T cmp.Ordered](g *core.Graph[T]) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out, err := yaml.Marshal(snapshot(g))
	if err != nil {
		return nil, fmt.Errorf("codec: marshal: %w", err)
	}

	return out, nil
}

// Decode reads a YAML graph document from r and rebuilds the graph.
func Decode[T cmp.Ordered](r io.Reader) (*core.Graph[T], error) {
	var doc document[T]
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}

	return restore(doc)
}

// Unmarshal rebuilds a graph from YAML bytes.
func Unmarshal[T cmp.Ordered](data []byte) (*core.Graph[T], error) {
	var doc document[T]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codec: unmarshal: %w", err)
	}

	return restore(doc)
}
