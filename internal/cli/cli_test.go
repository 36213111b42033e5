package cli

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphgen/pkg/cache"
	"github.com/matzehuels/graphgen/pkg/errors"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    []string
		notWant string
	}{
		{
			name:    "unsatisfiable",
			err:     errors.ValidateCounts(3, 4),
			want:    []string{"Cannot generate graph with 3 vertices and 4 edges"},
			notWant: usageLine,
		},
		{
			name:    "infeasible",
			err:     errors.New(errors.ErrCodeInfeasible, "2 edges exceed capacity 1"),
			want:    []string{"Failed to generate graph!", "2 edges exceed capacity 1"},
			notWant: usageLine,
		},
		{
			name: "invalid input",
			err:  errors.New(errors.ErrCodeInvalidInput, "missing edge count (-e)"),
			want: []string{"missing edge count", usageLine},
		},
		{
			name: "wrapped cause",
			err:  errors.Wrap(errors.ErrCodeInvalidConfig, stderrors.New("line 3: bad value"), "read config x.toml"),
			want: []string{"read config x.toml", "line 3: bad value"},
		},
		{
			name: "plain error",
			err:  stderrors.New("unknown flag: --bogus"),
			want: []string{"unknown flag: --bogus", usageLine},
		},
		{
			name:    "canceled",
			err:     errors.New(errors.ErrCodeCanceled, "stopped"),
			want:    []string{"Interrupted"},
			notWant: usageLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errOut bytes.Buffer
			New(io.Discard, &errOut, LogInfo).ReportError(tt.err)

			got := errOut.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("output should not contain %q:\n%s", tt.notWant, got)
			}
		})
	}
}

func TestNewCacheBackends(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	logger := newLogger(io.Discard, log.InfoLevel)

	tests := []struct {
		name    string
		cfg     CacheConfig
		noCache bool
		null    bool
	}{
		{"no-cache flag", CacheConfig{Enabled: true}, true, true},
		{"disabled in config", CacheConfig{Enabled: false}, false, true},
		{"file", CacheConfig{Enabled: true}, false, false},
		{"redis", CacheConfig{Enabled: true, RedisAddr: "127.0.0.1:0"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := newCache(tt.cfg, tt.noCache, logger)
			if err != nil {
				t.Fatalf("newCache: %v", err)
			}
			defer c.Close()

			_, isNull := c.(*cache.NullCache)
			if isNull != tt.null {
				t.Errorf("newCache returned %T, null = %v, want %v", c, isNull, tt.null)
			}
		})
	}
}

func TestNewRunnerTTL(t *testing.T) {
	logger := newLogger(io.Discard, log.InfoLevel)

	r, err := New(io.Discard, io.Discard, LogInfo).newRunner(CacheConfig{TTL: "2h"}, true, logger)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if r.TTL.Hours() != 2 {
		t.Errorf("TTL = %v, want 2h", r.TTL)
	}
	if key := r.Keyer.GraphKey(cache.GraphKeyOpts{Vertices: 1}); !strings.HasPrefix(key, "graphgen:") {
		t.Errorf("keys should be version scoped, got %s", key)
	}
}
