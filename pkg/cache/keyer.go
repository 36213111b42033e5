package cache

import "strings"

// Key prefixes, also used as the keyType reported to observability hooks.
const (
	KeyTypeGraph = "graph"
)

// GraphKeyOpts holds every input that determines a generated graph.
type GraphKeyOpts struct {
	Vertices   int    `json:"v"`
	Edges      int    `json:"e"`
	Oriented   bool   `json:"o"`
	NoContours bool   `json:"c"`
	Seed       uint64 `json:"seed"`
}

// Keyer builds cache keys.
type Keyer interface {
	GraphKey(opts GraphKeyOpts) string
}

// DefaultKeyer hashes every key input so keys have a fixed length.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GraphKey generates the key for a generated graph.
func (DefaultKeyer) GraphKey(opts GraphKeyOpts) string {
	return hashKey(KeyTypeGraph, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, so several graphgen versions or
// teams can share one Redis instance without colliding.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed key for a generated graph.
func (k *ScopedKeyer) GraphKey(opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(opts)
}

// keyType extracts the key type from a key produced by a Keyer,
// skipping any scope prefix.
func keyType(key string) string {
	if strings.Contains(key, KeyTypeGraph+":") {
		return KeyTypeGraph
	}
	return "unknown"
}
