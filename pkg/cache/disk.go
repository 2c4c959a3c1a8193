package cache

import (
	"container/list"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// diskMetadata is the per-entry sidecar persisted under metadata/. The value
// itself lives as an opaque blob under data/ with the same hashed filename.
type diskMetadata struct {
	Key            string    `json:"key"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at,omitempty"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	AccessCount    uint64    `json:"access_count"`
	Tags           []string  `json:"tags,omitempty"`
}

type diskIndexEntry struct {
	meta    diskMetadata
	lruElem *list.Element // element in diskTier.order; value is the key
}

// diskTier is the durable tier. An in-memory index mirrors the metadata
// files so lookups and LRU bookkeeping never touch the disk for misses;
// values are read from and written to per-entry files.
//
// All I/O failures are logged and degrade to a miss or a dropped write;
// nothing propagates to callers.
type diskTier struct {
	dir         string
	metadataDir string
	dataDir     string
	capacity    int

	mu    sync.Mutex
	index map[string]*diskIndexEntry
	order *list.List // front = most recently used

	counters *tierCounters
	onEvict  func(key string)
	logger   *slog.Logger
}

func newDiskTier(dir string, capacity int, onEvict func(string)) (*diskTier, error) {
	t := &diskTier{
		dir:         dir,
		metadataDir: filepath.Join(dir, "metadata"),
		dataDir:     filepath.Join(dir, "data"),
		capacity:    capacity,
		index:       make(map[string]*diskIndexEntry),
		order:       list.New(),
		counters:    newTierCounters(),
		onEvict:     onEvict,
		logger:      slog.With("subsystem", "cache.disk"),
	}

	for _, d := range []string{t.metadataDir, t.dataDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, err
		}
	}

	t.loadStats()
	t.loadIndex()
	return t, nil
}

func keyHash(key string) string {
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (t *diskTier) metadataPath(hash string) string {
	return filepath.Join(t.metadataDir, hash+".json")
}

func (t *diskTier) dataPath(hash string) string {
	return filepath.Join(t.dataDir, hash+".bin")
}

// loadIndex rebuilds the in-memory index from the metadata directory.
// Entries already expired on startup are discarded.
func (t *diskTier) loadIndex() {
	files, err := os.ReadDir(t.metadataDir)
	if err != nil {
		t.logger.Warn("Failed to scan cache metadata directory", "error", err)
		return
	}

	var entries []diskMetadata
	now := time.Now()
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(t.metadataDir, f.Name()))
		if err != nil {
			t.logger.Warn("Failed to read cache metadata", "file", f.Name(), "error", err)
			continue
		}
		var meta diskMetadata
		if err := json.Unmarshal(data, &meta); err != nil || meta.Key == "" {
			t.logger.Warn("Discarding corrupt cache metadata", "file", f.Name())
			t.removeFiles(keyHashFromFile(f.Name()))
			continue
		}
		if !meta.ExpiresAt.IsZero() && !now.Before(meta.ExpiresAt) {
			t.removeFiles(keyHash(meta.Key))
			continue
		}
		entries = append(entries, meta)
	}

	// Rebuild LRU order oldest-first so the list front ends up most recent.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastAccessedAt.Before(entries[j].LastAccessedAt)
	})

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, meta := range entries {
		elem := t.order.PushFront(meta.Key)
		t.index[meta.Key] = &diskIndexEntry{meta: meta, lruElem: elem}
	}
	if len(t.index) > 0 {
		t.logger.Info("Loaded disk cache index", "entries", len(t.index))
	}
}

func keyHashFromFile(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

// get returns the value and its metadata. A hit refreshes recency and
// rewrites the metadata sidecar best-effort.
func (t *diskTier) get(key string) ([]byte, diskMetadata, bool) {
	t.mu.Lock()
	e, ok := t.index[key]
	if !ok {
		t.counters.miss()
		t.mu.Unlock()
		return nil, diskMetadata{}, false
	}
	now := time.Now()
	if !e.meta.ExpiresAt.IsZero() && !now.Before(e.meta.ExpiresAt) {
		t.removeLocked(key)
		t.counters.expired(1)
		t.counters.miss()
		t.mu.Unlock()
		t.notifyEvict(key)
		return nil, diskMetadata{}, false
	}

	hash := keyHash(key)
	value, err := os.ReadFile(t.dataPath(hash))
	if err != nil {
		// Sidecar without blob: drop the entry and treat as miss.
		t.logger.Warn("Failed to read cache data file", "key", key, "error", err)
		t.removeLocked(key)
		t.counters.miss()
		t.mu.Unlock()
		t.notifyEvict(key)
		return nil, diskMetadata{}, false
	}

	e.meta.LastAccessedAt = now
	e.meta.AccessCount++
	t.order.MoveToFront(e.lruElem)
	meta := e.meta
	t.counters.hit()
	t.mu.Unlock()

	t.writeMetadata(hash, meta)
	return value, meta, true
}

// set writes the blob and sidecar, evicting the least-recently-used entry at
// the capacity boundary. Write failures drop the entry entirely so the index
// never references files that were not persisted.
func (t *diskTier) set(key string, value []byte, ttl time.Duration, tags []string) {
	now := time.Now()
	meta := diskMetadata{
		Key:            key,
		CreatedAt:      now,
		LastAccessedAt: now,
		Tags:           tags,
	}
	if ttl > 0 {
		meta.ExpiresAt = now.Add(ttl)
	}

	hash := keyHash(key)
	if err := os.WriteFile(t.dataPath(hash), value, 0o644); err != nil {
		t.logger.Warn("Failed to write cache data file", "key", key, "error", err)
		return
	}
	if !t.writeMetadata(hash, meta) {
		t.removeFiles(hash)
		return
	}

	t.mu.Lock()
	var evicted string
	if e, ok := t.index[key]; ok {
		e.meta = meta
		t.order.MoveToFront(e.lruElem)
	} else {
		if len(t.index) >= t.capacity {
			if back := t.order.Back(); back != nil {
				evicted = back.Value.(string)
				t.removeLocked(evicted)
				t.counters.evicted()
			}
		}
		elem := t.order.PushFront(key)
		t.index[key] = &diskIndexEntry{meta: meta, lruElem: elem}
	}
	t.mu.Unlock()

	if evicted != "" {
		t.notifyEvict(evicted)
	}
}

// setWithDeadline mirrors set with an absolute deadline; used when the
// manager re-persists a promoted entry.
func (t *diskTier) setWithDeadline(key string, value []byte, expiresAt time.Time, tags []string) {
	ttl := time.Duration(0)
	if !expiresAt.IsZero() {
		ttl = time.Until(expiresAt)
		if ttl <= 0 {
			return
		}
	}
	t.set(key, value, ttl, tags)
}

func (t *diskTier) delete(key string) bool {
	t.mu.Lock()
	_, ok := t.index[key]
	if ok {
		t.removeLocked(key)
	}
	t.mu.Unlock()
	return ok
}

func (t *diskTier) exists(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.index[key]
	return ok && (e.meta.ExpiresAt.IsZero() || time.Now().Before(e.meta.ExpiresAt))
}

func (t *diskTier) clear() {
	t.mu.Lock()
	keys := make([]string, 0, len(t.index))
	for key := range t.index {
		keys = append(keys, key)
	}
	for _, key := range keys {
		t.removeLocked(key)
	}
	t.mu.Unlock()
}

// sweep removes all entries past their deadline and returns their keys.
func (t *diskTier) sweep() []string {
	now := time.Now()

	t.mu.Lock()
	var removed []string
	for key, e := range t.index {
		if !e.meta.ExpiresAt.IsZero() && !now.Before(e.meta.ExpiresAt) {
			removed = append(removed, key)
		}
	}
	for _, key := range removed {
		t.removeLocked(key)
	}
	if len(removed) > 0 {
		t.counters.expired(len(removed))
	}
	t.mu.Unlock()

	for _, key := range removed {
		t.notifyEvict(key)
	}
	t.saveStats()
	return removed
}

// removeLocked drops the index entry and both files. Caller holds mu.
func (t *diskTier) removeLocked(key string) {
	if e, ok := t.index[key]; ok {
		t.order.Remove(e.lruElem)
		delete(t.index, key)
	}
	t.removeFiles(keyHash(key))
}

func (t *diskTier) removeFiles(hash string) {
	for _, path := range []string{t.metadataPath(hash), t.dataPath(hash)} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			t.logger.Warn("Failed to remove cache file", "path", path, "error", err)
		}
	}
}

func (t *diskTier) writeMetadata(hash string, meta diskMetadata) bool {
	data, err := json.Marshal(meta)
	if err != nil {
		t.logger.Warn("Failed to marshal cache metadata", "key", meta.Key, "error", err)
		return false
	}
	if err := os.WriteFile(t.metadataPath(hash), data, 0o644); err != nil {
		t.logger.Warn("Failed to write cache metadata", "key", meta.Key, "error", err)
		return false
	}
	return true
}

func (t *diskTier) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.index)
}

func (t *diskTier) stats() TierStats {
	return t.counters.snapshot(t.len())
}

func (t *diskTier) notifyEvict(key string) {
	if t.onEvict != nil {
		t.onEvict(key)
	}
}

// persistedStats is the stats.json document at the cache root.
type persistedStats struct {
	Hits        uint64    `json:"hits"`
	Misses      uint64    `json:"misses"`
	Evictions   uint64    `json:"evictions"`
	Expirations uint64    `json:"expirations"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *diskTier) statsPath() string {
	return filepath.Join(t.dir, "stats.json")
}

func (t *diskTier) loadStats() {
	data, err := os.ReadFile(t.statsPath())
	if err != nil {
		return
	}
	var s persistedStats
	if err := json.Unmarshal(data, &s); err != nil {
		t.logger.Warn("Discarding corrupt cache stats file", "error", err)
		return
	}
	t.counters.mu.Lock()
	t.counters.hits = s.Hits
	t.counters.misses = s.Misses
	t.counters.evictions = s.Evictions
	t.counters.expirations = s.Expirations
	if !s.CreatedAt.IsZero() {
		t.counters.createdAt = s.CreatedAt
	}
	t.counters.mu.Unlock()
}

func (t *diskTier) saveStats() {
	t.counters.mu.Lock()
	s := persistedStats{
		Hits:        t.counters.hits,
		Misses:      t.counters.misses,
		Evictions:   t.counters.evictions,
		Expirations: t.counters.expirations,
		CreatedAt:   t.counters.createdAt,
		UpdatedAt:   time.Now(),
	}
	t.counters.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := os.WriteFile(t.statsPath(), data, 0o644); err != nil {
		t.logger.Warn("Failed to persist cache stats", "error", err)
	}
}
