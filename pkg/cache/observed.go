package cache

import (
	"context"
	"time"

	"github.com/matzehuels/graphgen/pkg/observability"
)

// observed reports cache traffic to the registered observability hooks.
type observed struct {
	Cache
}

// Observe wraps c so every Get and Set is reported through
// observability.Cache().
func Observe(c Cache) Cache {
	return observed{Cache: c}
}

func (o observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := o.Cache.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, keyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, keyType(key))
		}
	}
	return data, hit, err
}

func (o observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := o.Cache.Set(ctx, key, data, ttl)
	if err == nil {
		observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	}
	return err
}
