package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	cache := NewMemoryCache(4)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set("a", "1"))
	val, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", val)
}

func TestMemoryCache_EvictsOldestAtCapacity(t *testing.T) {
	cache := NewMemoryCache(2)

	require.NoError(t, cache.Set("a", "1"))
	require.NoError(t, cache.Set("b", "2"))
	require.NoError(t, cache.Set("c", "3"))

	_, ok := cache.Get("a")
	assert.False(t, ok, "oldest entry should have been evicted")
	_, ok = cache.Get("b")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestMemoryCache_OverwriteDoesNotEvict(t *testing.T) {
	cache := NewMemoryCache(2)

	require.NoError(t, cache.Set("a", "1"))
	require.NoError(t, cache.Set("b", "2"))
	require.NoError(t, cache.Set("a", "updated"))

	val, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
	_, ok = cache.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache(16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", j%32)
				_ = cache.Set(key, "v")
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 16)
}

func TestMemoryCache_MinimumCapacity(t *testing.T) {
	cache := NewMemoryCache(0)

	require.NoError(t, cache.Set("a", "1"))
	require.NoError(t, cache.Set("b", "2"))

	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get("b")
	assert.True(t, ok)
}
