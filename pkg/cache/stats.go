package cache

import (
	"sync"
	"time"
)

// TierStats is a point-in-time snapshot of one cache tier.
type TierStats struct {
	Hits        uint64        `json:"hits"`
	Misses      uint64        `json:"misses"`
	HitRate     float64       `json:"hit_rate"`
	Evictions   uint64        `json:"evictions"`
	Expirations uint64        `json:"expirations"`
	Size        int           `json:"size"`
	Uptime      time.Duration `json:"uptime"`
}

// tierCounters accumulates tier statistics. Guarded by its own mutex so the
// hot read path does not contend with entry locks.
type tierCounters struct {
	mu          sync.Mutex
	hits        uint64
	misses      uint64
	evictions   uint64
	expirations uint64
	createdAt   time.Time
}

func newTierCounters() *tierCounters {
	return &tierCounters{createdAt: time.Now()}
}

func (c *tierCounters) hit()        { c.mu.Lock(); c.hits++; c.mu.Unlock() }
func (c *tierCounters) miss()       { c.mu.Lock(); c.misses++; c.mu.Unlock() }
func (c *tierCounters) evicted()    { c.mu.Lock(); c.evictions++; c.mu.Unlock() }
func (c *tierCounters) expired(n int) {
	c.mu.Lock()
	c.expirations += uint64(n)
	c.mu.Unlock()
}

func (c *tierCounters) snapshot(size int) TierStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := TierStats{
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
		Size:        size,
		Uptime:      time.Since(c.createdAt),
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}
