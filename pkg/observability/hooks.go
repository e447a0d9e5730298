// Package observability lets a binary observe rendering without the
// libraries depending on a metrics backend.
//
// Hooks are registered once at startup; libraries fetch the current hooks
// and report events to them. Every hook defaults to a no-op.
//
//	func main() {
//	    observability.SetPipelineHooks(&promPipelineHooks{})
//	    // ... run application
//	}
//
// Emitting:
//
//	observability.Pipeline().OnRenderStart(ctx, sceneID, formats)
//	// ... render ...
//	observability.Pipeline().OnRenderComplete(ctx, sceneID, formats, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	// OnRenderStart fires before any format of a scene is produced.
	OnRenderStart(ctx context.Context, sceneID string, formats []string)

	// OnFormatStart fires before each format is looked up or drawn, cache
	// hits included.
	OnFormatStart(ctx context.Context, format string)

	// OnFormatRendered fires after a single format was drawn (cache misses only).
	OnFormatRendered(ctx context.Context, format string, size int, duration time.Duration)

	// OnRenderComplete fires once per Execute, successful or not.
	OnRenderComplete(ctx context.Context, sceneID string, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from artifact cache lookups. keyType is the
// artifact format.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the scene server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks ignores every pipeline event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                          {}
func (NoopPipelineHooks) OnFormatStart(context.Context, string)                                    {}
func (NoopPipelineHooks) OnFormatRendered(context.Context, string, int, time.Duration)             {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, []string, time.Duration, error) {}

// NoopCacheHooks ignores every cache event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every HTTP event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Fan-out
// =============================================================================

// TeePipeline returns hooks that forward every event to each of hooks in
// order. Nil entries are skipped.
func TeePipeline(hooks ...PipelineHooks) PipelineHooks {
	var t pipelineTee
	for _, h := range hooks {
		if h != nil {
			t = append(t, h)
		}
	}
	if len(t) == 1 {
		return t[0]
	}
	return t
}

type pipelineTee []PipelineHooks

func (t pipelineTee) OnRenderStart(ctx context.Context, sceneID string, formats []string) {
	for _, h := range t {
		h.OnRenderStart(ctx, sceneID, formats)
	}
}

func (t pipelineTee) OnFormatStart(ctx context.Context, format string) {
	for _, h := range t {
		h.OnFormatStart(ctx, format)
	}
}

func (t pipelineTee) OnFormatRendered(ctx context.Context, format string, size int, duration time.Duration) {
	for _, h := range t {
		h.OnFormatRendered(ctx, format, size, duration)
	}
}

func (t pipelineTee) OnRenderComplete(ctx context.Context, sceneID string, formats []string, duration time.Duration, err error) {
	for _, h := range t {
		h.OnRenderComplete(ctx, sceneID, formats, duration, err)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers HTTP hooks. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
