package graph

import (
	"encoding/json"
	"maps"

	"github.com/matzehuels/graphgen/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// Output formats.
const (
	FormatMatrix = "matrix"
	FormatJSON   = "json"
	FormatDOT    = "dot"
	FormatSVG    = "svg"
)

// Formats lists every supported output format, default first.
var Formats = []string{FormatMatrix, FormatJSON, FormatDOT, FormatSVG}

// Metadata keys written by the CLI.
const (
	MetaRunID      = "run_id"
	MetaSeed       = "seed"
	MetaNoContours = "no_contours"
)

// =============================================================================
// Graph - Node-Link Serialization
// =============================================================================

// Graph is the node-link serialization of a Store.
// Vertices are identified by their matrix index, so only the count is stored.
type Graph struct {
	Vertices int            `json:"vertices"`
	Directed bool           `json:"directed"`
	Edges    []Edge         `json:"edges"`
	Meta     map[string]any `json:"meta,omitempty"`
}

// Edge is a single edge between two vertex indices.
// For undirected graphs From < To.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// =============================================================================
// Store ↔ Graph Conversion
// =============================================================================

// FromStore converts a Store to its serialization format.
// Edges are listed in row-major order.
func FromStore(s *Store, directed bool) Graph {
	edges := s.Edges(directed)
	if edges == nil {
		edges = []Edge{}
	}
	return Graph{
		Vertices: s.VertexCount(),
		Directed: directed,
		Edges:    edges,
	}
}

// WithMeta returns a copy of g carrying the given metadata merged over any
// existing entries.
func (g Graph) WithMeta(meta map[string]any) Graph {
	merged := make(map[string]any, len(g.Meta)+len(meta))
	maps.Copy(merged, g.Meta)
	maps.Copy(merged, meta)
	g.Meta = merged
	return g
}

// ToStore rebuilds a Store from its serialization.
// The edge count of the returned Store is the number of edges in g.
// Out-of-range endpoints, self-loops and duplicate edges are rejected.
func ToStore(g Graph) (*Store, error) {
	if g.Vertices < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "negative vertex count %d", g.Vertices)
	}
	s := Allocate(g.Vertices, len(g.Edges))
	for _, e := range g.Edges {
		if e.From < 0 || e.From >= g.Vertices || e.To < 0 || e.To >= g.Vertices {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %d→%d out of range for %d vertices", e.From, e.To, g.Vertices)
		}
		if e.From == e.To {
			return nil, errors.New(errors.ErrCodeInvalidInput, "self-loop at vertex %d", e.From)
		}
		if s.Get(e.From, e.To) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate edge %d→%d", e.From, e.To)
		}
		s.Set(e.From, e.To, true)
		if !g.Directed {
			s.Set(e.To, e.From, true)
		}
	}
	return s, nil
}

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}
