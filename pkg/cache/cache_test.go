package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, opts Options) *Manager {
	t.Helper()
	if opts.Dir == "" && !opts.DisableDisk {
		opts.Dir = t.TempDir()
	}
	m, err := NewManager(opts)
	require.NoError(t, err)
	return m
}

func TestManager_SetGetDelete(t *testing.T) {
	m := newTestManager(t, Options{})

	_, ok := m.Get("missing")
	assert.False(t, ok)

	m.Set("k", []byte("v1"), 0)
	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), got)

	// Last write wins until deleted.
	m.Set("k", []byte("v2"), 0)
	got, _ = m.Get("k")
	assert.Equal(t, []byte("v2"), got)

	assert.True(t, m.Delete("k"))
	_, ok = m.Get("k")
	assert.False(t, ok)
	assert.False(t, m.Delete("k"))
}

func TestManager_Exists(t *testing.T) {
	m := newTestManager(t, Options{})

	assert.False(t, m.Exists("k"))
	m.Set("k", []byte("v"), 0)
	assert.True(t, m.Exists("k"))
}

func TestManager_TTLExpiry(t *testing.T) {
	m := newTestManager(t, Options{})

	m.Set("k", []byte("v"), 30*time.Millisecond)
	_, ok := m.Get("k")
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	_, ok = m.Get("k")
	assert.False(t, ok, "entry should lazily expire on read")

	stats := m.Stats()
	assert.GreaterOrEqual(t, stats["memory"].Expirations+stats["disk"].Expirations, uint64(1))
}

func TestManager_DiskPromotion(t *testing.T) {
	m := newTestManager(t, Options{})

	m.Set("k", []byte("v"), 0)
	// Drop the memory copy only; the next Get must hit disk and promote.
	require.True(t, m.memory.delete("k"))
	assert.False(t, m.memory.exists("k"))

	got, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)
	assert.True(t, m.memory.exists("k"), "disk hit should be promoted to memory")
	assert.True(t, m.disk.exists("k"), "disk copy remains after promotion")
}

func TestManager_DiskSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	m := newTestManager(t, Options{Dir: dir})
	m.Set("k", []byte("persisted"), 0, "tag-a")

	m2 := newTestManager(t, Options{Dir: dir})
	got, ok := m2.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("persisted"), got)

	// Tag index is rebuilt from disk metadata.
	assert.Equal(t, 1, m2.InvalidateTag("tag-a"))
	_, ok = m2.Get("k")
	assert.False(t, ok)
}

func TestManager_TagInvalidation(t *testing.T) {
	m := newTestManager(t, Options{})

	m.Set("a", []byte("1"), 0, "route")
	m.Set("b", []byte("2"), 0, "route", "server-1")
	m.Set("c", []byte("3"), 0, "server-1")
	m.Set("d", []byte("4"), 0)

	assert.Equal(t, 2, m.InvalidateTag("route"))
	_, ok := m.Get("a")
	assert.False(t, ok)
	_, ok = m.Get("b")
	assert.False(t, ok)

	// Entries without the tag survive.
	_, ok = m.Get("c")
	assert.True(t, ok)
	_, ok = m.Get("d")
	assert.True(t, ok)

	// b is already gone; only c remains for server-1.
	assert.Equal(t, 1, m.InvalidateTags([]string{"route", "server-1"}))

	// Invalidating an unknown tag is a no-op.
	assert.Equal(t, 0, m.InvalidateTag("route"))
}

func TestManager_SetReplacesTags(t *testing.T) {
	m := newTestManager(t, Options{})

	m.Set("k", []byte("v"), 0, "old")
	m.Set("k", []byte("v"), 0, "new")

	assert.Equal(t, 0, m.InvalidateTag("old"))
	assert.Equal(t, 1, m.InvalidateTag("new"))
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager(t, Options{})

	m.Set("a", []byte("1"), 0, "t")
	m.Set("b", []byte("2"), 0)
	m.Clear()

	assert.False(t, m.Exists("a"))
	assert.False(t, m.Exists("b"))
	assert.Equal(t, 0, m.InvalidateTag("t"))
	assert.Equal(t, 0, m.Stats()["memory"].Size)
}

func TestManager_LRUBound(t *testing.T) {
	m := newTestManager(t, Options{MemorySize: 3, DisableDisk: true})

	for i := 0; i < 5; i++ {
		m.Set(fmt.Sprintf("k%d", i), []byte("v"), 0)
	}

	stats := m.Stats()["memory"]
	assert.Equal(t, 3, stats.Size, "tier size never exceeds capacity")
	assert.Equal(t, uint64(2), stats.Evictions)

	// Oldest keys were evicted, newest survive.
	_, ok := m.Get("k0")
	assert.False(t, ok)
	_, ok = m.Get("k4")
	assert.True(t, ok)
}

func TestManager_LRURecencyOrder(t *testing.T) {
	m := newTestManager(t, Options{MemorySize: 2, DisableDisk: true})

	m.Set("a", []byte("1"), 0)
	m.Set("b", []byte("2"), 0)
	_, _ = m.Get("a") // refresh a; b becomes LRU
	m.Set("c", []byte("3"), 0)

	_, ok := m.Get("b")
	assert.False(t, ok, "least-recently-used entry is the one evicted")
	_, ok = m.Get("a")
	assert.True(t, ok)
}

func TestManager_Cached(t *testing.T) {
	m := newTestManager(t, Options{})

	calls := 0
	compute := func() ([]byte, error) {
		calls++
		return []byte("computed"), nil
	}

	v, err := m.Cached("k", 0, nil, compute)
	require.NoError(t, err)
	assert.Equal(t, []byte("computed"), v)

	v, err = m.Cached("k", 0, nil, compute)
	require.NoError(t, err)
	assert.Equal(t, []byte("computed"), v)
	assert.Equal(t, 1, calls, "second call must be served from cache")
}

func TestManager_CachedError(t *testing.T) {
	m := newTestManager(t, Options{})

	wantErr := fmt.Errorf("compute failed")
	_, err := m.Cached("k", 0, nil, func() ([]byte, error) { return nil, wantErr })
	assert.ErrorIs(t, err, wantErr)
	assert.False(t, m.Exists("k"), "failed computations are not cached")
}

func TestManager_Stats(t *testing.T) {
	m := newTestManager(t, Options{})

	m.Set("k", []byte("v"), 0)
	_, _ = m.Get("k")
	_, _ = m.Get("nope")

	mem := m.Stats()["memory"]
	assert.Equal(t, uint64(1), mem.Hits)
	assert.Equal(t, uint64(1), mem.Misses)
	assert.InDelta(t, 0.5, mem.HitRate, 1e-9)
	assert.Equal(t, 1, mem.Size)
	assert.Greater(t, mem.Uptime, time.Duration(0))
}

func TestManager_ConcurrentSameKey(t *testing.T) {
	m := newTestManager(t, Options{})

	// Hammer one key with concurrent sets, gets, and deletes; the keyed
	// mutex must keep every observed value well-formed.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				switch j % 3 {
				case 0:
					m.Set("hot", []byte("value"), 0)
				case 1:
					if v, ok := m.Get("hot"); ok {
						assert.Equal(t, []byte("value"), v)
					}
				case 2:
					m.Delete("hot")
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestManager_SweepExpiresEntries(t *testing.T) {
	m := newTestManager(t, Options{DisableDisk: true})

	m.Set("short", []byte("v"), 10*time.Millisecond)
	m.Set("keep", []byte("v"), 0)
	time.Sleep(20 * time.Millisecond)

	removed := m.memory.sweep()
	assert.Equal(t, []string{"short"}, removed)
	assert.True(t, m.Exists("keep"))
}
