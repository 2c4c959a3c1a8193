// Package cache implements the router's two-tier result cache: a bounded
// in-memory LRU in front of a bounded on-disk tier, with per-entry TTL and
// tag-based bulk invalidation.
//
// Reads consult memory first; a disk hit is promoted into memory while the
// disk copy remains. Writes go to both tiers. Per-key operations are
// serialized by a striped keyed mutex so promotion can never race a delete
// of the same key. Disk failures never propagate: a failed read is a miss,
// a failed write is dropped.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sweep cadence per tier. Expired entries are also dropped lazily on read.
const (
	memorySweepInterval = 60 * time.Second
	diskSweepInterval   = 300 * time.Second
)

// Options configures a Manager.
type Options struct {
	MemorySize  int    // entries; 0 = default 1000
	DiskSize    int    // entries; 0 = default 10000
	Dir         string // disk cache root; required unless DisableDisk
	DisableDisk bool
}

// Manager is the two-tier cache. Safe for concurrent use.
type Manager struct {
	memory *memoryTier
	disk   *diskTier // nil when the disk tier is disabled

	locks keyedMutex

	// Tag index: key → tags and tag → keys, kept in lockstep.
	tagMu   sync.Mutex
	keyTags map[string]map[string]struct{}
	tagKeys map[string]map[string]struct{}

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewManager creates the cache. Call Start to begin expiration sweeps and
// Stop to halt them and persist disk statistics.
func NewManager(opts Options) (*Manager, error) {
	if opts.MemorySize <= 0 {
		opts.MemorySize = 1000
	}
	if opts.DiskSize <= 0 {
		opts.DiskSize = 10000
	}

	m := &Manager{
		keyTags: make(map[string]map[string]struct{}),
		tagKeys: make(map[string]map[string]struct{}),
		logger:  slog.With("subsystem", "cache"),
	}

	memory, err := newMemoryTier(opts.MemorySize, m.retireKeyIfDead)
	if err != nil {
		return nil, err
	}
	m.memory = memory

	if !opts.DisableDisk {
		disk, err := newDiskTier(opts.Dir, opts.DiskSize, m.retireKeyIfDead)
		if err != nil {
			return nil, err
		}
		m.disk = disk
		m.rebuildTagIndex()
	}

	return m, nil
}

// rebuildTagIndex restores tag mappings for entries that survived a restart.
func (m *Manager) rebuildTagIndex() {
	m.disk.mu.Lock()
	defer m.disk.mu.Unlock()

	m.tagMu.Lock()
	defer m.tagMu.Unlock()
	for key, e := range m.disk.index {
		for _, tag := range e.meta.Tags {
			m.addTagLocked(key, tag)
		}
	}
}

// Start launches the background expiration sweeps.
// Calling Start on a running manager is a no-op.
func (m *Manager) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)

		memTicker := time.NewTicker(memorySweepInterval)
		defer memTicker.Stop()
		diskTicker := time.NewTicker(diskSweepInterval)
		defer diskTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-memTicker.C:
				if removed := m.memory.sweep(); len(removed) > 0 {
					m.logger.Debug("Memory sweep expired entries", "count", len(removed))
				}
			case <-diskTicker.C:
				if m.disk == nil {
					continue
				}
				if removed := m.disk.sweep(); len(removed) > 0 {
					m.logger.Debug("Disk sweep expired entries", "count", len(removed))
				}
			}
		}
	}()
}

// Stop halts the sweeps and persists disk statistics. Idempotent.
func (m *Manager) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.cancel = nil
	m.done = nil

	if m.disk != nil {
		m.disk.saveStats()
	}
}

// Get returns the cached value for key, promoting a disk hit into memory.
func (m *Manager) Get(key string) ([]byte, bool) {
	lock := m.locks.lock(key)
	defer lock.Unlock()

	if value, ok := m.memory.get(key); ok {
		return value, true
	}
	if m.disk == nil {
		return nil, false
	}
	value, meta, ok := m.disk.get(key)
	if !ok {
		return nil, false
	}
	m.memory.setWithDeadline(key, value, meta.ExpiresAt)
	return value, true
}

// Set stores the value in both tiers. ttl of zero means no expiry.
func (m *Manager) Set(key string, value []byte, ttl time.Duration, tags ...string) {
	lock := m.locks.lock(key)
	m.memory.set(key, value, ttl)
	if m.disk != nil {
		m.disk.set(key, value, ttl, tags)
	}
	lock.Unlock()

	m.tagMu.Lock()
	m.clearTagsLocked(key)
	for _, tag := range tags {
		m.addTagLocked(key, tag)
	}
	m.tagMu.Unlock()
}

// Delete removes the key from both tiers. Reports whether any tier held it.
func (m *Manager) Delete(key string) bool {
	lock := m.locks.lock(key)
	removed := m.memory.delete(key)
	if m.disk != nil {
		if m.disk.delete(key) {
			removed = true
		}
	}
	lock.Unlock()

	m.tagMu.Lock()
	m.clearTagsLocked(key)
	m.tagMu.Unlock()
	return removed
}

// Exists reports whether either tier holds a live entry for key.
func (m *Manager) Exists(key string) bool {
	lock := m.locks.lock(key)
	defer lock.Unlock()

	if m.memory.exists(key) {
		return true
	}
	return m.disk != nil && m.disk.exists(key)
}

// Clear empties both tiers and the tag index.
func (m *Manager) Clear() {
	m.memory.clear()
	if m.disk != nil {
		m.disk.clear()
	}

	m.tagMu.Lock()
	m.keyTags = make(map[string]map[string]struct{})
	m.tagKeys = make(map[string]map[string]struct{})
	m.tagMu.Unlock()
}

// InvalidateTag deletes every entry carrying the tag. Returns the number of
// entries removed.
func (m *Manager) InvalidateTag(tag string) int {
	m.tagMu.Lock()
	keys := make([]string, 0, len(m.tagKeys[tag]))
	for key := range m.tagKeys[tag] {
		keys = append(keys, key)
	}
	m.tagMu.Unlock()

	count := 0
	for _, key := range keys {
		if m.Delete(key) {
			count++
		}
	}
	return count
}

// InvalidateTags deletes every entry carrying any of the tags.
func (m *Manager) InvalidateTags(tags []string) int {
	count := 0
	for _, tag := range tags {
		count += m.InvalidateTag(tag)
	}
	return count
}

// Cached memoizes compute through the cache: a hit returns the stored bytes,
// a miss runs compute and stores its result under key.
func (m *Manager) Cached(key string, ttl time.Duration, tags []string, compute func() ([]byte, error)) ([]byte, error) {
	if value, ok := m.Get(key); ok {
		return value, nil
	}
	value, err := compute()
	if err != nil {
		return nil, err
	}
	m.Set(key, value, ttl, tags...)
	return value, nil
}

// Stats returns per-tier snapshots keyed "memory" and "disk".
func (m *Manager) Stats() map[string]TierStats {
	stats := map[string]TierStats{
		"memory": m.memory.stats(),
	}
	if m.disk != nil {
		stats["disk"] = m.disk.stats()
	}
	return stats
}

// retireKeyIfDead drops tag mappings for a key once no tier holds it. Called
// by the tiers after eviction or expiry; the entry may legitimately survive
// in the other tier, in which case its tags stay.
func (m *Manager) retireKeyIfDead(key string) {
	if m.memory.exists(key) {
		return
	}
	if m.disk != nil && m.disk.exists(key) {
		return
	}
	m.tagMu.Lock()
	m.clearTagsLocked(key)
	m.tagMu.Unlock()
}

func (m *Manager) addTagLocked(key, tag string) {
	if m.keyTags[key] == nil {
		m.keyTags[key] = make(map[string]struct{})
	}
	m.keyTags[key][tag] = struct{}{}
	if m.tagKeys[tag] == nil {
		m.tagKeys[tag] = make(map[string]struct{})
	}
	m.tagKeys[tag][key] = struct{}{}
}

func (m *Manager) clearTagsLocked(key string) {
	for tag := range m.keyTags[key] {
		delete(m.tagKeys[tag], key)
		if len(m.tagKeys[tag]) == 0 {
			delete(m.tagKeys, tag)
		}
	}
	delete(m.keyTags, key)
}
