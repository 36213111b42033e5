// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about graph generation, rendering and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main (or the CLI), never by libraries, so the core
// packages stay free of backend imports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGeneratorHooks(&myGeneratorHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generator().OnGenerateStart(ctx, vertices, edges)
//	// ... sample edges ...
//	observability.Generator().OnGenerateComplete(ctx, placed, attempts, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generator Hooks
// =============================================================================

// GeneratorHooks receives events from graph generation and rendering.
type GeneratorHooks interface {
	// Generation events
	OnGenerateStart(ctx context.Context, vertices, edges int)
	OnGenerateComplete(ctx context.Context, placed, attempts int, duration time.Duration, err error)

	// Render events
	OnRender(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnGenerateStart(context.Context, int, int) {}
func (NoopGeneratorHooks) OnGenerateComplete(context.Context, int, int, time.Duration, error) {
}
func (NoopGeneratorHooks) OnRender(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetGeneratorHooks registers custom generator hooks.
// This should be called once at application startup before any generation.
func SetGeneratorHooks(h GeneratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generatorHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Generator returns the registered generator hooks.
func Generator() GeneratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generatorHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
	cacheHooks = NoopCacheHooks{}
}
