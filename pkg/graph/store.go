package graph

import "fmt"

// =============================================================================
// Store - Adjacency Matrix Storage
// =============================================================================

// Store owns the vertex and edge counts of a generated graph together with
// its adjacency matrix.
//
// The matrix is a single row-major buffer of vertexCount² cells; cell (i, j)
// is 1 iff there is an edge from i to j. The diagonal is never set.
//
// A Store is mutated by exactly one generation pass and is read-only
// afterwards. It is not safe for concurrent mutation.
type Store struct {
	vertices int
	edges    int
	cells    []byte
}

// Allocate creates a Store for vertexCount vertices with every cell cleared.
// edgeCount is the target number of edges a generator should place; it is
// recorded as-is and only describes the matrix once generation succeeds.
//
// Negative counts are a programming error and panic.
func Allocate(vertexCount, edgeCount int) *Store {
	if vertexCount < 0 || edgeCount < 0 {
		panic(fmt.Sprintf("graph: invalid allocation (%d vertices, %d edges)", vertexCount, edgeCount))
	}
	return &Store{
		vertices: vertexCount,
		edges:    edgeCount,
		cells:    make([]byte, vertexCount*vertexCount),
	}
}

// VertexCount returns the number of vertices.
func (s *Store) VertexCount() int { return s.vertices }

// EdgeCount returns the requested edge count.
func (s *Store) EdgeCount() int { return s.edges }

// Get reports whether the edge i→j is present.
// Indices outside [0, VertexCount()) panic.
func (s *Store) Get(i, j int) bool {
	return s.cells[s.offset(i, j)] != 0
}

// Set sets or clears the edge i→j.
// Indices outside [0, VertexCount()) panic, as does setting a diagonal cell.
func (s *Store) Set(i, j int, v bool) {
	off := s.offset(i, j)
	if !v {
		s.cells[off] = 0
		return
	}
	if i == j {
		panic(fmt.Sprintf("graph: self-loop at vertex %d", i))
	}
	s.cells[off] = 1
}

// SetCount returns the number of set cells. For an undirected graph this is
// twice the number of edges.
func (s *Store) SetCount() int {
	n := 0
	for _, c := range s.cells {
		n += int(c)
	}
	return n
}

// Empty reports whether no cell is set.
func (s *Store) Empty() bool {
	for _, c := range s.cells {
		if c != 0 {
			return false
		}
	}
	return true
}

// Row returns a copy of row i.
func (s *Store) Row(i int) []byte {
	row := make([]byte, s.vertices)
	copy(row, s.cells[s.offset(i, 0):s.offset(i, 0)+s.vertices])
	return row
}

// Edges lists the set cells as edges in row-major order.
// When directed is false each symmetric pair is listed once, as i < j.
func (s *Store) Edges(directed bool) []Edge {
	var out []Edge
	for i := 0; i < s.vertices; i++ {
		for j := 0; j < s.vertices; j++ {
			if !s.Get(i, j) {
				continue
			}
			if !directed && j < i && s.Get(j, i) {
				continue
			}
			out = append(out, Edge{From: i, To: j})
		}
	}
	return out
}

func (s *Store) offset(i, j int) int {
	if i < 0 || i >= s.vertices || j < 0 || j >= s.vertices {
		panic(fmt.Sprintf("graph: cell (%d, %d) out of range for %d vertices", i, j, s.vertices))
	}
	return i*s.vertices + j
}
