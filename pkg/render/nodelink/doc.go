// Package nodelink renders generated graphs as node-link diagrams.
//
// # Usage
//
// Convert a Store to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(s, nodelink.Options{Directed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Oriented graphs become a digraph with "->" edges. Undirected graphs become
// a graph with "--" edges, each symmetric pair drawn once.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package nodelink
