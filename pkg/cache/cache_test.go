package cache

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func newTestCache(capacity int, ttl time.Duration, clock *fakeClock) *LRUCache {
	c := NewLRUCache(capacity, ttl)
	c.now = clock.now
	return c
}

func TestLRUCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, clock *fakeClock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				if v, ok := c.Get(ctx, "a"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				clock.advance(60 * time.Millisecond)
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				c.Set(ctx, "c", []byte("3"))
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get(ctx, "b"); !ok || string(v) != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get(ctx, "c"); !ok || string(v) != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				clock.advance(30 * time.Millisecond)
				c.Set(ctx, "a", []byte("2"))
				clock.advance(30 * time.Millisecond)
				if v, ok := c.Get(ctx, "a"); !ok || string(v) != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete invalidates keys",
			capacity: 3,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *fakeClock, t *testing.T) {
				c.Set(ctx, "product:1", []byte("1"))
				c.Set(ctx, "product:2", []byte("2"))
				c.Set(ctx, "order:x", []byte("x"))
				c.Delete(ctx, "product:1", "product:2", "missing")
				if _, ok := c.Get(ctx, "product:1"); ok {
					t.Errorf("expected product:1 to be deleted")
				}
				if _, ok := c.Get(ctx, "product:2"); ok {
					t.Errorf("expected product:2 to be deleted")
				}
				if _, ok := c.Get(ctx, "order:x"); !ok {
					t.Errorf("expected order:x to survive")
				}
				if c.Size() != 1 {
					t.Errorf("expected size 1, got %d", c.Size())
				}
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache, clock *fakeClock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				clock.advance(60 * time.Millisecond)

				c.purgeExpired()

				if c.Size() != 0 {
					t.Errorf("expected janitor cleanup to remove expired key")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			c := newTestCache(tt.capacity, tt.ttl, clock)
			tt.actions(c, clock, t)
		})
	}
}

func TestLRUCache_Metrics(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	c := newTestCache(1, time.Second, clock)

	hits := testutil.ToFloat64(lookups.WithLabelValues(backendMemory, "hit"))
	misses := testutil.ToFloat64(lookups.WithLabelValues(backendMemory, "miss"))
	byCapacity := testutil.ToFloat64(evictions.WithLabelValues("capacity"))
	byExpiry := testutil.ToFloat64(evictions.WithLabelValues("expired"))

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	c.Get(ctx, "a")
	c.Get(ctx, "b")
	clock.advance(2 * time.Second)
	c.Get(ctx, "b")

	if got := testutil.ToFloat64(lookups.WithLabelValues(backendMemory, "hit")) - hits; got != 1 {
		t.Errorf("expected 1 hit, got %v", got)
	}
	if got := testutil.ToFloat64(lookups.WithLabelValues(backendMemory, "miss")) - misses; got != 2 {
		t.Errorf("expected 2 misses, got %v", got)
	}
	if got := testutil.ToFloat64(evictions.WithLabelValues("capacity")) - byCapacity; got != 1 {
		t.Errorf("expected 1 capacity eviction, got %v", got)
	}
	if got := testutil.ToFloat64(evictions.WithLabelValues("expired")) - byExpiry; got != 1 {
		t.Errorf("expected 1 expiry eviction, got %v", got)
	}
}
