// Package cache provides a byte-bounded LRU with per-entry expiry, used by
// the gateway's read-cache driver decorator.
package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"
)

// Class separates entry namespaces sharing one cache.
type Class uint8

const (
	// ClassStat holds object metadata entries.
	ClassStat Class = iota
	// ClassData holds whole small-object payloads.
	ClassData
)

// Key identifies one cache entry.
type Key struct {
	Class Class
	Path  string
}

// LRU is a byte-bounded LRU cache with per-entry TTL.
// Safe for concurrent use.
type LRU struct {
	mu        sync.Mutex
	capacity  int64
	size      int64
	items     map[Key]*list.Element
	evictList *list.List

	hits   atomic.Int64
	misses atomic.Int64
}

type entry struct {
	key       Key
	value     any
	size      int64
	expiresAt time.Time
}

// NewLRU creates a cache bounded by capacity bytes. Entry sizes are
// reported by the caller on Set; an entry larger than the whole capacity
// is never cached.
func NewLRU(capacity int64) *LRU {
	return &LRU{
		capacity:  capacity,
		items:     make(map[Key]*list.Element),
		evictList: list.New(),
	}
}

// Get returns the cached value for key, if present and not expired.
func (c *LRU) Get(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	e := ent.Value.(*entry)
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.removeElement(ent)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	c.evictList.MoveToFront(ent)
	return e.value, true
}

// Set caches value under key. size is the accounted byte cost; ttl of zero
// means no expiry.
func (c *LRU) Set(key Key, value any, size int64, ttl time.Duration) {
	if size > c.capacity {
		return
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.items[key]; ok {
		e := ent.Value.(*entry)
		c.size += size - e.size
		e.value, e.size, e.expiresAt = value, size, expiresAt
		c.evictList.MoveToFront(ent)
	} else {
		ent := c.evictList.PushFront(&entry{key: key, value: value, size: size, expiresAt: expiresAt})
		c.items[key] = ent
		c.size += size
	}

	for c.size > c.capacity {
		oldest := c.evictList.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
	}
}

// Delete drops the entries for the given keys, if present.
func (c *LRU) Delete(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		if ent, ok := c.items[key]; ok {
			c.removeElement(ent)
		}
	}
}

// Stats returns cumulative hit/miss counters.
func (c *LRU) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of live entries.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

// Size returns the accounted byte total.
func (c *LRU) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *LRU) removeElement(ent *list.Element) {
	e := ent.Value.(*entry)
	c.evictList.Remove(ent)
	delete(c.items, e.key)
	c.size -= e.size
}
