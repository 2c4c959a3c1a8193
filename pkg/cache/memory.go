package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// memoryEntry is one value in the memory tier.
type memoryEntry struct {
	value          []byte
	createdAt      time.Time
	expiresAt      time.Time // zero = never expires
	lastAccessedAt time.Time
	accessCount    uint64
}

func (e *memoryEntry) expiredAt(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// memoryTier is the fast in-process tier: a bounded LRU with per-entry TTL.
// The LRU itself is thread-safe, but expiry-check-then-remove must be atomic,
// so all operations run under mu.
type memoryTier struct {
	mu       sync.Mutex
	entries  *lru.Cache[string, *memoryEntry]
	capacity int
	counters *tierCounters

	// onEvict is called (without mu held by the callee) when a key falls out
	// at the capacity boundary or expires, so the manager can retire its tags.
	onEvict func(key string)
}

func newMemoryTier(size int, onEvict func(string)) (*memoryTier, error) {
	entries, err := lru.New[string, *memoryEntry](size)
	if err != nil {
		return nil, err
	}
	return &memoryTier{
		entries:  entries,
		capacity: size,
		counters: newTierCounters(),
		onEvict:  onEvict,
	}, nil
}

// get returns the value for key, nil when absent or expired. Expired entries
// are removed on read.
func (t *memoryTier) get(key string) ([]byte, bool) {
	t.mu.Lock()
	e, ok := t.entries.Get(key)
	if !ok {
		t.counters.miss()
		t.mu.Unlock()
		return nil, false
	}
	if e.expiredAt(time.Now()) {
		t.entries.Remove(key)
		t.counters.expired(1)
		t.counters.miss()
		t.mu.Unlock()
		t.notifyEvict(key)
		return nil, false
	}
	e.lastAccessedAt = time.Now()
	e.accessCount++
	t.counters.hit()
	t.mu.Unlock()
	return e.value, true
}

// set stores the value, evicting the least-recently-used entry when the tier
// is full.
func (t *memoryTier) set(key string, value []byte, ttl time.Duration) {
	now := time.Now()
	e := &memoryEntry{
		value:          value,
		createdAt:      now,
		lastAccessedAt: now,
	}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}

	t.mu.Lock()
	var evicted string
	if !t.entries.Contains(key) && t.entries.Len() >= t.capacity {
		if oldest, _, ok := t.entries.GetOldest(); ok {
			t.entries.Remove(oldest)
			t.counters.evicted()
			evicted = oldest
		}
	}
	t.entries.Add(key, e)
	t.mu.Unlock()

	if evicted != "" {
		t.notifyEvict(evicted)
	}
}

// setWithDeadline mirrors set but takes an absolute expiry, used when
// promoting a disk entry so the two tiers agree on the deadline.
func (t *memoryTier) setWithDeadline(key string, value []byte, expiresAt time.Time) {
	ttl := time.Duration(0)
	if !expiresAt.IsZero() {
		ttl = time.Until(expiresAt)
		if ttl <= 0 {
			return // already expired; nothing to promote
		}
	}
	t.set(key, value, ttl)
}

func (t *memoryTier) delete(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries.Remove(key)
}

func (t *memoryTier) exists(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries.Peek(key)
	return ok && !e.expiredAt(time.Now())
}

func (t *memoryTier) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries.Purge()
}

// sweep removes all entries whose deadline has passed and returns their keys.
func (t *memoryTier) sweep() []string {
	now := time.Now()

	t.mu.Lock()
	var removed []string
	for _, key := range t.entries.Keys() {
		if e, ok := t.entries.Peek(key); ok && e.expiredAt(now) {
			t.entries.Remove(key)
			removed = append(removed, key)
		}
	}
	if len(removed) > 0 {
		t.counters.expired(len(removed))
	}
	t.mu.Unlock()

	for _, key := range removed {
		t.notifyEvict(key)
	}
	return removed
}

func (t *memoryTier) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries.Len()
}

func (t *memoryTier) stats() TierStats {
	return t.counters.snapshot(t.len())
}

func (t *memoryTier) notifyEvict(key string) {
	if t.onEvict != nil {
		t.onEvict(key)
	}
}
