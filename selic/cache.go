package selic

import (
	"sync"
	"time"
)

// Cache holds the last fetched payload for a time-to-live.
//
// The payload is kept rather than the schedule: the open-ended decision is
// resolved against the date of each Fetch, so a payload fetched yesterday
// still covers today.
//
// A single Cache is meant to be shared by every Provider of a process. Refresh
// is last writer wins: concurrent fetches simply overwrite each other.
type Cache struct {
	ttl time.Duration

	mu      sync.Mutex
	payload []byte
	fetched time.Time
}

// NewCache returns an empty cache. A non positive ttl defaults to TTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = TTL
	}
	return &Cache{ttl: ttl}
}

// Get returns the cached payload if it was stored less than ttl before now.
func (c *Cache) Get(now time.Time) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.payload == nil {
		return nil, false
	}
	if age := now.Sub(c.fetched); age < 0 || age >= c.ttl {
		return nil, false
	}
	return c.payload, true
}

// Put stores the payload as fetched at now.
func (c *Cache) Put(payload []byte, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload, c.fetched = payload, now
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload, c.fetched = nil, time.Time{}
}
