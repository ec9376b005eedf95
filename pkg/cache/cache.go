package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type entry struct {
	key     string
	value   []byte
	expires time.Time
}

// LRUCache is an in-process cache bounded by capacity, with per-entry TTL.
// The most recently used entry sits at the front of recency.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	recency  *list.List
	index    map[string]*list.Element
	now      func() time.Time
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		recency:  list.New(),
		index:    make(map[string]*list.Element, capacity),
		now:      time.Now,
	}
}

func (c *LRUCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		observeLookup(backendMemory, false)
		return nil, false
	}
	ent := el.Value.(*entry)
	if c.now().After(ent.expires) {
		c.drop(el, "expired")
		observeLookup(backendMemory, false)
		return nil, false
	}
	c.recency.MoveToFront(el)
	observeLookup(backendMemory, true)
	return ent.value, true
}

// Set stores value under key and restarts its TTL.
func (c *LRUCache) Set(_ context.Context, key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.ttl)
	if el, ok := c.index[key]; ok {
		ent := el.Value.(*entry)
		ent.value, ent.expires = value, expires
		c.recency.MoveToFront(el)
		return
	}

	c.index[key] = c.recency.PushFront(&entry{key: key, value: value, expires: expires})
	for c.recency.Len() > c.capacity {
		c.drop(c.recency.Back(), "capacity")
	}
}

func (c *LRUCache) Delete(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if el, ok := c.index[key]; ok {
			c.recency.Remove(el)
			delete(c.index, key)
		}
	}
}

// drop removes el and counts it as an eviction for reason. Callers hold mu.
func (c *LRUCache) drop(el *list.Element, reason string) {
	c.recency.Remove(el)
	delete(c.index, el.Value.(*entry).key)
	evictions.WithLabelValues(reason).Inc()
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recency.Len()
}

// Start runs the expired-entry janitor until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.purgeExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) purgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.recency.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*entry).expires) {
			c.drop(el, "expired")
		}
		el = prev
	}
}
