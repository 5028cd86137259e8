package server

import (
	"sync"
	"time"
)

// CacheEntry is one generated page's cached HTML plus its revalidation
// window. Grounded on next-server/src/isr.rs's CacheEntry.
type CacheEntry struct {
	HTML            string
	GeneratedAt     time.Time
	RevalidateAfter time.Duration
}

func newCacheEntry(html string, revalidateSeconds uint64) CacheEntry {
	return CacheEntry{
		HTML:            html,
		GeneratedAt:     time.Now(),
		RevalidateAfter: time.Duration(revalidateSeconds) * time.Second,
	}
}

// IsStale reports whether the entry has outlived its revalidation window.
func (e CacheEntry) IsStale() bool {
	return time.Since(e.GeneratedAt) > e.RevalidateAfter
}

// AgeSeconds reports how long ago the entry was generated.
func (e CacheEntry) AgeSeconds() uint64 {
	return uint64(time.Since(e.GeneratedAt).Seconds())
}

// IncrementalCache is a sync.RWMutex-guarded path->CacheEntry map exactly
// as §5 specifies: readers for Get, a writer for Set/Invalidate. Cloning
// an IncrementalCache shares the same underlying map (via the embedded
// pointer and mutex), mirroring the Rust Arc<RwLock<HashMap>> clone
// semantics so every handler goroutine observes the same cache.
type IncrementalCache struct {
	mu                *sync.RWMutex
	entries           map[string]CacheEntry
	defaultRevalidate uint64
}

// NewIncrementalCache creates a cache whose entries revalidate after
// defaultRevalidateSeconds unless set with an explicit override.
func NewIncrementalCache(defaultRevalidateSeconds uint64) *IncrementalCache {
	return &IncrementalCache{
		mu:                &sync.RWMutex{},
		entries:           make(map[string]CacheEntry),
		defaultRevalidate: defaultRevalidateSeconds,
	}
}

// Get returns the cached entry for path, if any, regardless of staleness.
func (c *IncrementalCache) Get(path string) (CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[path]
	return entry, ok
}

// GetIfFresh returns the cached entry only if it has not gone stale.
func (c *IncrementalCache) GetIfFresh(path string) (CacheEntry, bool) {
	entry, ok := c.Get(path)
	if !ok || entry.IsStale() {
		return CacheEntry{}, false
	}
	return entry, true
}

// Set caches html under path using the cache's default revalidation window.
func (c *IncrementalCache) Set(path, html string) {
	c.SetWithRevalidate(path, html, c.defaultRevalidate)
}

// SetWithRevalidate caches html under path with an explicit revalidation window.
func (c *IncrementalCache) SetWithRevalidate(path, html string, revalidateSeconds uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = newCacheEntry(html, revalidateSeconds)
}

// Invalidate evicts the cached entry for path, if any.
func (c *IncrementalCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// InvalidateAll evicts every cached entry.
func (c *IncrementalCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// StalePaths returns every cached path whose entry is currently stale.
func (c *IncrementalCache) StalePaths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var stale []string
	for path, entry := range c.entries {
		if entry.IsStale() {
			stale = append(stale, path)
		}
	}
	return stale
}

// CacheSize returns the number of cached entries.
func (c *IncrementalCache) CacheSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// IsrConfig controls the default revalidation behavior a Dispatcher wires
// its IncrementalCache with.
type IsrConfig struct {
	RevalidateSeconds    uint64
	OnDemandRevalidation bool
}

// DefaultIsrConfig mirrors next-server/src/isr.rs's Default impl: a
// 60-second window with on-demand revalidation enabled.
func DefaultIsrConfig() IsrConfig {
	return IsrConfig{RevalidateSeconds: 60, OnDemandRevalidation: true}
}
