// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about diagram walks and exports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Render().OnWalkStart(ctx, n)
//	// ... walk ...
//	observability.Render().OnWalkComplete(ctx, n, circles, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from the rendering pipeline.
type RenderHooks interface {
	// OnWalkStart fires before the first circle of value n is drawn.
	OnWalkStart(ctx context.Context, n int)
	// OnWalkComplete fires once the walk has finished or failed.
	OnWalkComplete(ctx context.Context, n, circles int, duration time.Duration, err error)

	// OnExportComplete fires after all artifacts for name were rendered and written.
	OnExportComplete(ctx context.Context, name string, formats []string, duration time.Duration, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnWalkStart(context.Context, int)                               {}
func (NoopRenderHooks) OnWalkComplete(context.Context, int, int, time.Duration, error) {}
func (NoopRenderHooks) OnExportComplete(context.Context, string, []string, time.Duration, error) {
}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any draw.
// A nil value is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
