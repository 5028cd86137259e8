package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheEntryCreation(t *testing.T) {
	entry := newCacheEntry("<html></html>", 60)
	assert.False(t, entry.IsStale())
	assert.Equal(t, "<html></html>", entry.HTML)
}

func TestCacheEntryStaleness(t *testing.T) {
	entry := newCacheEntry("<html></html>", 0)
	time.Sleep(10 * time.Millisecond)
	assert.True(t, entry.IsStale())
}

func TestIncrementalCacheOperations(t *testing.T) {
	cache := NewIncrementalCache(60)

	_, ok := cache.Get("/")
	assert.False(t, ok)

	cache.Set("/", "<html>home</html>")
	entry, ok := cache.Get("/")
	require.True(t, ok)
	assert.Equal(t, "<html>home</html>", entry.HTML)

	cache.Invalidate("/")
	_, ok = cache.Get("/")
	assert.False(t, ok)
}

func TestCacheWithRevalidate(t *testing.T) {
	cache := NewIncrementalCache(60)

	cache.SetWithRevalidate("/fast", "fast page", 0)
	time.Sleep(10 * time.Millisecond)

	entry, ok := cache.Get("/fast")
	require.True(t, ok)
	assert.True(t, entry.IsStale())

	_, ok = cache.GetIfFresh("/fast")
	assert.False(t, ok)
}

func TestStalePaths(t *testing.T) {
	cache := NewIncrementalCache(60)

	cache.SetWithRevalidate("/stale1", "page1", 0)
	cache.SetWithRevalidate("/stale2", "page2", 0)
	cache.Set("/fresh", "fresh page")

	time.Sleep(10 * time.Millisecond)

	stale := cache.StalePaths()
	assert.Len(t, stale, 2)
	assert.Contains(t, stale, "/stale1")
	assert.Contains(t, stale, "/stale2")
}

func TestCacheSharesDataAcrossReferences(t *testing.T) {
	cache1 := NewIncrementalCache(60)
	cache2 := *cache1

	cache1.Set("/shared", "shared content")

	_, ok := cache2.Get("/shared")
	assert.True(t, ok)
}
