package cache

import (
	"context"
	"errors"
	"testing"
)

func TestRedisCacheCanceledContext(t *testing.T) {
	c := NewRedisCache(RedisConfig{Addr: "127.0.0.1:1", Prefix: "test:"})
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := c.Get(ctx, "graph:x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Get with canceled context = %v, want context.Canceled", err)
	}
	if err := c.Set(ctx, "graph:x", []byte("v"), 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Set with canceled context = %v, want context.Canceled", err)
	}
}
