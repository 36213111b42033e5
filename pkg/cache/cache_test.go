package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/graphgen/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "graph:a"); err != nil || hit {
		t.Fatalf("empty cache Get = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "graph:a", []byte("payload"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "graph:a")
	if err != nil || !hit {
		t.Fatalf("Get after Set = hit %v, err %v", hit, err)
	}
	if string(data) != "payload" {
		t.Errorf("data = %q, want payload", data)
	}

	if err := c.Delete(ctx, "graph:a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "graph:a"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "graph:a"); err != nil {
		t.Errorf("Delete of missing key should not fail: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v; want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cache dir should be empty, has %d entries", len(entries))
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir itself should remain: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	base := GraphKeyOpts{Vertices: 10, Edges: 5, Seed: 42}

	key := k.GraphKey(base)
	if !strings.HasPrefix(key, "graph:") {
		t.Errorf("GraphKey should start with graph:, got %s", key)
	}
	if key != k.GraphKey(base) {
		t.Error("GraphKey should be deterministic")
	}

	variants := []GraphKeyOpts{
		{Vertices: 11, Edges: 5, Seed: 42},
		{Vertices: 10, Edges: 6, Seed: 42},
		{Vertices: 10, Edges: 5, Seed: 43},
		{Vertices: 10, Edges: 5, Seed: 42, Oriented: true},
		{Vertices: 10, Edges: 5, Seed: 42, NoContours: true},
	}
	for _, v := range variants {
		if k.GraphKey(v) == key {
			t.Errorf("GraphKey(%+v) collides with base key", v)
		}
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "team:ci:")

	key := scoped.GraphKey(GraphKeyOpts{Vertices: 3})
	if !strings.HasPrefix(key, "team:ci:graph:") {
		t.Errorf("ScopedKeyer GraphKey should be prefixed: %s", key)
	}
	if keyType(key) != KeyTypeGraph {
		t.Errorf("keyType(%s) = %s, want %s", key, keyType(key), KeyTypeGraph)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.GraphKey(GraphKeyOpts{})
	if !strings.HasPrefix(key, "prefix:graph:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrNetwork) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()
	retryDelay = time.Millisecond
	defer func() { retryDelay = 100 * time.Millisecond }()

	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	permanent := errors.New("permanent")
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return permanent
	})
	if err != permanent {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return Retryable(ErrNetwork)
	})
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("Should return last error: %v", err)
	}
	if calls != 3 {
		t.Errorf("Should attempt 3 times: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	if err := classify(context.Canceled); IsRetryable(err) {
		t.Error("context errors must not be retryable")
	}
	err := classify(errors.New("dial tcp: connection refused"))
	if !IsRetryable(err) || !errors.Is(err, ErrNetwork) {
		t.Errorf("connection errors should be retryable network errors: %v", err)
	}
}

func TestObserve(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := Observe(fc)
	key := NewDefaultKeyer().GraphKey(GraphKeyOpts{Vertices: 2})

	_, _, _ = c.Get(ctx, key)
	_ = c.Set(ctx, key, []byte("12345"), 0)
	_, _, _ = c.Get(ctx, key)

	if hooks.misses != 1 || hooks.hits != 1 || hooks.sets != 1 {
		t.Errorf("hooks = %+v, want one miss, hit and set", *hooks)
	}
	if hooks.size != 5 {
		t.Errorf("set size = %d, want 5", hooks.size)
	}
	if hooks.keyType != KeyTypeGraph {
		t.Errorf("keyType = %s, want %s", hooks.keyType, KeyTypeGraph)
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets, size int
	keyType                  string
}

func (h *countingHooks) OnCacheHit(_ context.Context, kt string)  { h.hits++; h.keyType = kt }
func (h *countingHooks) OnCacheMiss(_ context.Context, kt string) { h.misses++; h.keyType = kt }
func (h *countingHooks) OnCacheSet(_ context.Context, kt string, size int) {
	h.sets++
	h.size = size
}
