package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// MarshalGraph converts a Graph to indented JSON bytes.
func MarshalGraph(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a Graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, f)
}

// WriteGraph writes a Graph as JSON to an io.Writer.
// Use MarshalGraph for in-memory serialization or WriteGraphFile for files.
func WriteGraph(g Graph, w io.Writer) error {
	return writeGraphTo(g, w)
}

// ReadGraphFile reads a JSON file and returns the decoded Store.
func ReadGraphFile(path string) (*Store, Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readGraphFrom(f)
}

// ReadGraph decodes a JSON graph from an io.Reader into a Store.
// The decoded Graph is returned alongside for its metadata.
func ReadGraph(r io.Reader) (*Store, Graph, error) {
	return readGraphFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeGraphTo(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGraphFrom(r io.Reader) (*Store, Graph, error) {
	var data Graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, Graph{}, fmt.Errorf("decode: %w", err)
	}
	s, err := ToStore(data)
	if err != nil {
		return nil, Graph{}, err
	}
	return s, data, nil
}
