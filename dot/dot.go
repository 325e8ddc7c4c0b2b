// Package dot renders a core.Graph in the Graphviz DOT language and can
// rasterize the result to PNG.
//
// Output is deterministic: node statements come first in ascending label
// order, then edge statements in canonical (u < v) sorted order. Two
// calls over the same graph state produce byte-identical output.
//
//	graph G {
//	  "A";
//	  "B";
//	  "A" -- "B";
//	}
package dot

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/knotenlab/knoten/core"
)

const (
	header = "graph G {\n"
	footer = "}\n"
	indent = "  "
)

// quote formats a label of any type as a quoted DOT identifier.
func quote(label any) string {
	return strconv.Quote(fmt.Sprint(label))
}

// Render returns the DOT text for g. A nil graph renders as the empty
// graph (header and footer only), so callers can pipe optional graphs
// straight through.
// Complexity: O(V log V + E log E).
func Render[T cmp.Ordered](g *core.Graph[T]) []byte {
	var b strings.Builder
	b.WriteString(header)

	if g != nil {
		for _, id := range g.Nodes() {
			b.WriteString(indent)
			b.WriteString(quote(id))
			b.WriteString(";\n")
		}
		for _, e := range g.Edges() {
			b.WriteString(indent)
			b.WriteString(quote(e.U))
			b.WriteString(" -- ")
			b.WriteString(quote(e.V))
			b.WriteString(";\n")
		}
	}

	b.WriteString(footer)

	return []byte(b.String())
}

// Write renders g and writes the DOT text to w.
func Write[T cmp.Ordered](g *core.Graph[T], w io.Writer) error {
	if _, err := w.Write(Render(g)); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}

	return nil
}

// WriteFile renders g and writes the DOT text to path, overwriting any
// existing file. An open or write failure is returned, never swallowed.
func WriteFile[T cmp.Ordered](g *core.Graph[T], path string) error {
	if err := os.WriteFile(path, Render(g), 0o644); err != nil {
		return fmt.Errorf("dot: write %s: %w", path, err)
	}

	return nil
}

// RenderPNG writes the DOT text for g to dotPath and rasterizes it to a
// PNG image at pngPath.
func RenderPNG[T cmp.Ordered](ctx context.Context, g *core.Graph[T], dotPath, pngPath string) error {
	raw := Render(g)
	if err := os.WriteFile(dotPath, raw, 0o644); err != nil {
		return fmt.Errorf("dot: write %s: %w", dotPath, err)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("dot: create graphviz: %w", err)
	}
	defer func() {
		_ = gv.Close()
	}()

	parsed, err := graphviz.ParseBytes(raw)
	if err != nil {
		return fmt.Errorf("dot: parse: %w", err)
	}
	defer func() {
		_ = parsed.Close()
	}()

	if err := gv.RenderFilename(ctx, parsed, graphviz.PNG, pngPath); err != nil {
		return fmt.Errorf("dot: render png: %w", err)
	}

	return nil
}
