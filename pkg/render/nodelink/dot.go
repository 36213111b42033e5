package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/graphgen/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Directed emits a digraph with arrows; otherwise an undirected graph
	// with each symmetric pair drawn once.
	Directed bool

	// Detailed adds out- and in-degree to node labels.
	// When false, only the vertex index is shown.
	Detailed bool
}

// ToDOT converts a generated graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Every vertex is emitted, including isolated ones, in index order.
func ToDOT(s *graph.Store, opts Options) string {
	kind, arrow := "graph", "--"
	if opts.Directed {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	n := s.VertexCount()
	for i := 0; i < n; i++ {
		fmt.Fprintf(&buf, "  \"%d\" [label=%q];\n", i, fmtLabel(s, i, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range s.Edges(opts.Directed) {
		fmt.Fprintf(&buf, "  \"%d\" %s \"%d\";\n", e.From, arrow, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(s *graph.Store, v int, detailed bool) string {
	id := strconv.Itoa(v)
	if !detailed {
		return id
	}
	out, in := 0, 0
	for u := 0; u < s.VertexCount(); u++ {
		if s.Get(v, u) {
			out++
		}
		if s.Get(u, v) {
			in++
		}
	}
	return fmt.Sprintf("%s\nout: %d\nin: %d", id, out, in)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing starts at the
// origin and scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
