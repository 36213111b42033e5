// Package cache stores generated graphs so seeded runs can be replayed
// without sampling again.
//
// Only a run with an explicit non-zero seed is reproducible, so only those
// runs are cached. Entries are the JSON serialization of the generated graph
// keyed by [Keyer.GraphKey].
//
// Backends:
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: shared cache for teams that run graphgen in CI
//   - [NullCache]: caching disabled
//
// [Observe] wraps any backend so hits, misses and writes reach the
// observability hooks.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long generated graphs stay cached unless configured.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// A missing or expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
