package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/graphgen/pkg/cache"
	"github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	for _, path := range []string{"", missing} {
		cfg, unknown, err := loadConfig(path, false)
		if err != nil {
			t.Fatalf("loadConfig(%q) error: %v", path, err)
		}
		if len(unknown) != 0 {
			t.Errorf("unexpected unknown keys: %v", unknown)
		}
		if cfg != defaultConfig() {
			t.Errorf("loadConfig(%q) = %+v, want defaults", path, cfg)
		}
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"), true)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("explicit missing config: got %v, want INVALID_CONFIG", err)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
oriented = true
no_contours = true
format = "json"

[cache]
enabled = false
ttl = "1h"
redis_addr = "localhost:6379"
`)

	cfg, unknown, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if len(unknown) != 0 {
		t.Errorf("unexpected unknown keys: %v", unknown)
	}
	if !cfg.Oriented || !cfg.NoContours {
		t.Errorf("flags not decoded: %+v", cfg)
	}
	if cfg.Format != graph.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Cache.Enabled {
		t.Error("cache.enabled = false not decoded")
	}
	if ttl, _ := cfg.Cache.ttl(); ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", ttl)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.Cache.RedisAddr)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `oriented = true`)

	cfg, _, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.Format != graph.FormatMatrix {
		t.Errorf("Format = %q, want default matrix", cfg.Format)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should stay enabled by default")
	}
	if ttl, _ := cfg.Cache.ttl(); ttl != cache.DefaultTTL {
		t.Errorf("ttl = %v, want %v", ttl, cache.DefaultTTL)
	}
}

func TestLoadConfigUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
colour = "blue"

[cache]
size = 3
`)

	_, unknown, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	want := map[string]bool{"colour": true, "cache.size": true}
	if len(unknown) != len(want) {
		t.Fatalf("unknown = %v, want %v", unknown, want)
	}
	for _, k := range unknown {
		if !want[k] {
			t.Errorf("unexpected unknown key %q", k)
		}
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `oriented = `},
		{"type", `oriented = "yes"`},
		{"format", `format = "png"`},
		{"ttl", "[cache]\nttl = \"soon\""},
		{"negative ttl", "[cache]\nttl = \"-1h\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, _, err := loadConfig(path, true)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("got %v, want INVALID_CONFIG", err)
			}
		})
	}
}
