// Package memo is the derivation cache of layout passes.
//
// A [Cache] holds one entry per (instance id, stage name). An entry keeps
// the fingerprint of the inputs a stage last ran with and the value it
// produced. When a stage is asked to run again with the same fingerprint,
// the stored value is returned as is, so unchanged stages yield the very
// same pointers pass after pass.
//
// Caches are explicit objects. Entries of an instance live until
// [Cache.Teardown] removes them; instances never see each other's entries.
//
// Fingerprints are xxhash digests of a canonical encoding of the declared
// inputs, built with a [Hasher].
package memo

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/matzehuels/chartframe/pkg/observability"
)

// Key identifies a cache entry.
type Key struct {
	Instance string
	Stage    string
}

// Entry is the last result of one stage of one instance.
type Entry struct {
	Fingerprint Fingerprint
	Value       any
	UpdatedAt   time.Time

	Hits   int
	Misses int
}

// Cache stores stage results per instance.
type Cache struct {
	mu       sync.Mutex
	entries  map[Key]*Entry
	disabled bool
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[Key]*Entry)}
}

// NewNull creates a cache that never stores anything, so every stage
// recomputes on every pass.
func NewNull() *Cache {
	return &Cache{entries: make(map[Key]*Entry), disabled: true}
}

// Lookup returns the stored value of a stage if it was computed with fp.
func (c *Cache) Lookup(instance, stage string, fp Fingerprint) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[Key{instance, stage}]
	if !ok || c.disabled || e.Fingerprint != fp {
		return nil, false
	}
	return e.Value, true
}

// Store records the value a stage computed with fp.
func (c *Cache) Store(instance, stage string, fp Fingerprint, v any) {
	if c.disabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	k := Key{instance, stage}
	e, ok := c.entries[k]
	if !ok {
		e = &Entry{}
		c.entries[k] = e
	}
	e.Fingerprint = fp
	e.Value = v
	e.UpdatedAt = time.Now()
}

func (c *Cache) count(instance, stage string, hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[Key{instance, stage}]
	if !ok {
		return
	}
	if hit {
		e.Hits++
	} else {
		e.Misses++
	}
}

// Do returns the stored value of a stage when fp matches, and otherwise
// runs compute and stores its result. Errors are never stored, so a
// failing stage runs again on the next pass. hit reports whether compute
// was skipped.
func Do[T any](ctx context.Context, c *Cache, instance, stage string, fp Fingerprint, compute func() (T, error)) (v T, hit bool, err error) {
	if stored, ok := c.Lookup(instance, stage, fp); ok {
		if v, ok := stored.(T); ok {
			c.count(instance, stage, true)
			observability.Cache().OnCacheHit(ctx, stage)
			return v, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, stage)
	v, err = compute()
	if err != nil {
		var zero T
		return zero, false, err
	}
	c.Store(instance, stage, fp, v)
	c.count(instance, stage, false)
	return v, false, nil
}

// Entry returns a copy of an entry.
func (c *Cache) Entry(instance, stage string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[Key{instance, stage}]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Teardown removes every entry of an instance and returns how many were
// removed.
func (c *Cache) Teardown(ctx context.Context, instance string) int {
	c.mu.Lock()
	n := 0
	for k := range c.entries {
		if k.Instance == instance {
			delete(c.entries, k)
			n++
		}
	}
	c.mu.Unlock()
	observability.Cache().OnCacheTeardown(ctx, instance, n)
	return n
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Instances returns the ids of instances holding entries, sorted.
func (c *Cache) Instances() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for k := range c.entries {
		if !seen[k.Instance] {
			seen[k.Instance] = true
			out = append(out, k.Instance)
		}
	}
	slices.Sort(out)
	return out
}
