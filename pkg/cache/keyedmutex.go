package cache

import (
	"hash/fnv"
	"sync"
)

// stripeCount is the fixed number of key mutexes. Power of two so the hash
// can be masked instead of divided.
const stripeCount = 64

// keyedMutex serializes operations on the same cache key. Promotion from
// disk to memory and deletion of the same key must never interleave, so
// every per-key operation runs under the key's stripe.
type keyedMutex struct {
	stripes [stripeCount]sync.Mutex
}

func (k *keyedMutex) lock(key string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(key))
	m := &k.stripes[h.Sum32()&(stripeCount-1)]
	m.Lock()
	return m
}
