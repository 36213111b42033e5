// Package pipeline runs graph generation end to end: sample a graph,
// optionally through the cache, then render it in one output format.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Generate: fill a [graph.Store] by rejection sampling, or load the same
//     graph from the cache for a seeded run
//  2. Render: encode the Store as matrix, JSON, DOT or SVG
//
// Each stage can be run on its own or as part of [Runner.Execute].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Vertices: 10,
//	    Edges:    8,
//	    Oriented: true,
//	    Seed:     42,
//	    Format:   graph.FormatJSON,
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Artifact)
//
// # Caching
//
// Only runs with a non-zero Seed are reproducible, so only those are read
// from or written to the cache. The cached value is the JSON serialization
// of the generated graph; rendering always runs.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphgen/pkg/cache"
	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/generate"
	"github.com/matzehuels/graphgen/pkg/graph"
)

// DefaultFormat is the output format used when Options.Format is empty.
const DefaultFormat = graph.FormatMatrix

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Generate options
	Vertices   int    `json:"vertices"`
	Edges      int    `json:"edges"`
	Oriented   bool   `json:"oriented,omitempty"`
	NoContours bool   `json:"no_contours,omitempty"`
	Seed       uint64 `json:"seed,omitempty"` // 0 derives a seed from the clock and disables caching

	// Render options
	Format   string `json:"format,omitempty"`
	Detailed bool   `json:"detailed,omitempty"` // degree labels in dot/svg

	// Runtime options (not serialized)
	RunID  string      `json:"-"` // recorded in JSON metadata
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Store is the generated adjacency matrix.
	Store *graph.Store

	// Graph is the node-link form of Store, with run metadata attached.
	Graph graph.Graph

	// Seed is the seed the generator actually used.
	Seed uint64

	// Artifact is the rendered output in Options.Format.
	Artifact []byte

	// Stats contains sampling and timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
// Sampling counters are zero when the graph came from the cache.
type Stats struct {
	Sampling     generate.Stats
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GraphHit bool // Whether the graph came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// Validate checks the counts and format and applies defaults.
func (o *Options) Validate() error {
	if err := errors.ValidateCounts(o.Vertices, o.Edges); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := errors.ValidateFormat(o.Format, graph.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Cacheable reports whether the run is reproducible and may use the cache.
func (o *Options) Cacheable() bool {
	return o.Seed != 0
}

// Sampling returns the generator options.
func (o *Options) Sampling() generate.Options {
	return generate.Options{Oriented: o.Oriented, NoContours: o.NoContours}
}

// GraphKeyOpts returns cache key options for the generated graph.
// seed must be the effective seed.
func (o *Options) GraphKeyOpts(seed uint64) cache.GraphKeyOpts {
	return cache.GraphKeyOpts{
		Vertices:   o.Vertices,
		Edges:      o.Edges,
		Oriented:   o.Oriented,
		NoContours: o.NoContours,
		Seed:       seed,
	}
}

// meta returns the metadata recorded in the JSON output.
func (o *Options) meta(seed uint64) map[string]any {
	m := map[string]any{
		graph.MetaSeed:       seed,
		graph.MetaNoContours: o.NoContours,
	}
	if o.RunID != "" {
		m[graph.MetaRunID] = o.RunID
	}
	return m
}
