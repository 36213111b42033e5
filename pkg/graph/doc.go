// Package graph provides adjacency matrix storage and serialization for
// generated graphs.
//
// # Storage
//
// [Store] owns the vertex count, the requested edge count and a square
// adjacency matrix kept in one contiguous row-major buffer:
//
//	s := graph.Allocate(4, 3)   // 4×4 matrix, all cells cleared
//	s.Set(0, 1, true)           // edge 0→1
//	s.Get(1, 0)                 // false unless set separately
//
// The diagonal is never set, and indices outside the matrix panic: both are
// programming errors guarded by callers, not recoverable conditions.
//
// # Matrix Output
//
// [WriteMatrix] prints one row per line with 0/1 tokens separated by spaces:
//
//	0 1 0 0
//	1 0 0 1
//	0 0 0 0
//	0 1 0 0
//
// # JSON Serialization
//
// Graphs use a compact node-link format where vertices are matrix indices:
//
//	{
//	  "vertices": 4,
//	  "directed": false,
//	  "edges": [{"from": 0, "to": 1}, {"from": 1, "to": 3}]
//	}
//
// Common operations:
//
//	data, _ := graph.MarshalGraph(graph.FromStore(s, false)) // Store → []byte
//	s, g, _ := graph.ReadGraphFile("graph.json")              // File → Store
//
// # Concurrency
//
// A Store may be read concurrently once generation has finished. It must not
// be mutated concurrently.
package graph
