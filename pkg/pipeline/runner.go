package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphgen/pkg/cache"
	"github.com/matzehuels/graphgen/pkg/generate"
	"github.com/matzehuels/graphgen/pkg/graph"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration // lifetime of cached graphs; 0 means cache.DefaultTTL
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// Execute runs the complete generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Generate
	generateStart := time.Now()
	s, seed, stats, hit, err := r.GenerateWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Store = s
	result.Seed = seed
	result.Stats.Sampling = stats
	result.Stats.GenerateTime = time.Since(generateStart)
	result.CacheInfo.GraphHit = hit
	result.Graph = graph.FromStore(s, opts.Oriented).WithMeta(opts.meta(seed))

	opts.Logger.Debug("generated graph",
		"vertices", s.VertexCount(),
		"edges", s.EdgeCount(),
		"cached", hit,
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifact, err := Render(ctx, s, result.Graph, opts.Format, opts.Detailed)
	if err != nil {
		return nil, err
	}
	result.Artifact = artifact
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Debug("rendered output",
		"format", opts.Format,
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo samples a graph, or loads it from the cache for a
// seeded run, and returns the effective seed and whether the cache hit.
// Cache failures are logged and never fail the run.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (*graph.Store, uint64, generate.Stats, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, 0, generate.Stats{}, false, err
	}
	r.applyLogger(&opts)

	seed := generate.SeedOrNow(opts.Seed)
	cacheable := opts.Cacheable()
	cacheKey := r.Keyer.GraphKey(opts.GraphKeyOpts(seed))

	// Try cache first
	if cacheable {
		if s, ok := r.loadCached(ctx, cacheKey, opts); ok {
			return s, seed, generate.Stats{}, true, nil // Cache hit
		}
	}

	// Generate
	s := graph.Allocate(opts.Vertices, opts.Edges)
	stats, err := generate.Generate(ctx, s, opts.Sampling(), generate.NewRand(seed))
	if err != nil {
		return nil, seed, stats, false, err
	}

	// Cache the result
	if cacheable {
		if data, err := graph.MarshalGraph(graph.FromStore(s, opts.Oriented)); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, r.ttl()); err != nil {
				opts.Logger.Warn("cache write failed", "error", err)
			}
		}
	}

	return s, seed, stats, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and
// returns only the Store.
func (r *Runner) Generate(ctx context.Context, opts Options) (*graph.Store, error) {
	s, _, _, _, err := r.GenerateWithCacheInfo(ctx, opts)
	return s, err
}

// loadCached returns the cached graph for key if it exists and still
// matches the requested shape. Bad entries are deleted.
func (r *Runner) loadCached(ctx context.Context, key string, opts Options) (*graph.Store, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		opts.Logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}

	s, g, err := graph.ReadGraph(bytes.NewReader(data))
	if err == nil && g.Directed == opts.Oriented && s.VertexCount() == opts.Vertices && s.EdgeCount() == opts.Edges {
		return s, true
	}
	opts.Logger.Warn("discarding bad cache entry", "error", err)
	_ = r.Cache.Delete(ctx, key)
	return nil, false
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl() time.Duration {
	if r.TTL <= 0 {
		return cache.DefaultTTL
	}
	return r.TTL
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
