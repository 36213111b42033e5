package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphgen/pkg/observability"
)

// logHooks reports generator and cache events as debug log lines, so
// --verbose shows sampling statistics without touching stdout.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.GeneratorHooks = (*logHooks)(nil)
	_ observability.CacheHooks     = (*logHooks)(nil)
)

func (h *logHooks) OnGenerateStart(_ context.Context, vertices, edges int) {
	h.logger.Debug("sampling edges", "vertices", vertices, "edges", edges)
}

func (h *logHooks) OnGenerateComplete(_ context.Context, placed, attempts int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("sampling stopped", "placed", placed, "attempts", attempts, "error", err)
		return
	}
	h.logger.Debug("sampling done", "placed", placed, "attempts", attempts, "rejected", attempts-placed, "took", d)
}

func (h *logHooks) OnRender(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "took", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
