// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout passes, cache lookups, and text measurement.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStageHooks(&myStageHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Stage().OnStageStart(ctx, instance, "frame")
//	// ... compute the frame ...
//	observability.Stage().OnStageComplete(ctx, instance, "frame", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Stage Hooks
// =============================================================================

// StageHooks receives events from layout passes. Skipped stages emit no
// stage events, only a cache hit.
type StageHooks interface {
	OnStageStart(ctx context.Context, instance, stage string)
	OnStageComplete(ctx context.Context, instance, stage string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from the derivation cache.
type CacheHooks interface {
	// OnCacheHit records a stage whose inputs were unchanged.
	OnCacheHit(ctx context.Context, stage string)

	// OnCacheMiss records a stage that had to recompute.
	OnCacheMiss(ctx context.Context, stage string)

	// OnCacheTeardown records the removal of an instance's entries.
	OnCacheTeardown(ctx context.Context, instance string, entries int)
}

// =============================================================================
// Measure Hooks
// =============================================================================

// MeasureHooks receives events from text measurement surfaces.
type MeasureHooks interface {
	OnSurfaceAcquire(ctx context.Context, instance string)
	OnSurfaceRelease(ctx context.Context, instance string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStageHooks is a no-op implementation of StageHooks.
type NoopStageHooks struct{}

func (NoopStageHooks) OnStageStart(context.Context, string, string) {}
func (NoopStageHooks) OnStageComplete(context.Context, string, string, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)           {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)          {}
func (NoopCacheHooks) OnCacheTeardown(context.Context, string, int) {}

// NoopMeasureHooks is a no-op implementation of MeasureHooks.
type NoopMeasureHooks struct{}

func (NoopMeasureHooks) OnSurfaceAcquire(context.Context, string)        {}
func (NoopMeasureHooks) OnSurfaceRelease(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	stageHooks   StageHooks   = NoopStageHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	measureHooks MeasureHooks = NoopMeasureHooks{}
	hooksMu      sync.RWMutex
)

// SetStageHooks registers custom stage hooks.
// This should be called once at application startup before any layout pass.
func SetStageHooks(h StageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		stageHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any layout pass.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetMeasureHooks registers custom measure hooks.
func SetMeasureHooks(h MeasureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		measureHooks = h
	}
}

// Stage returns the registered stage hooks.
func Stage() StageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return stageHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Measure returns the registered measure hooks.
func Measure() MeasureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return measureHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	stageHooks = NoopStageHooks{}
	cacheHooks = NoopCacheHooks{}
	measureHooks = NoopMeasureHooks{}
}
