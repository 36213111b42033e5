// Package pkg provides the libraries behind graphgen, a generator of random
// simple graphs.
//
// # Overview
//
// graphgen samples graphs with an exact number of vertices and edges by
// rejection sampling over an adjacency matrix. The pkg directory is
// organized as:
//
//  1. [graph] - Adjacency matrix storage and its matrix/JSON serializations
//  2. [generate] - The rejection sampler and capacity rules
//  3. [pipeline] - Orchestration (generate → render) with caching
//  4. [render/nodelink] - DOT and SVG output through Graphviz
//  5. [cache] - File, Redis and null cache backends
//  6. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
//	vertex/edge counts + options
//	         ↓
//	    [generate] fills a [graph.Store]
//	         ↓
//	    [pipeline] renders matrix, JSON, DOT or SVG
//
// # Quick Start
//
//	s := graph.Allocate(5, 4)
//	stats, err := generate.Generate(ctx, s, generate.Options{Oriented: true}, generate.NewRand(42))
//	if err != nil {
//	    return err
//	}
//	graph.WriteMatrix(os.Stdout, s)
package pkg
