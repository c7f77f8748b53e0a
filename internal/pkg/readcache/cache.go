// Package readcache is a size-bounded, TTL-expiring read-through cache with
// per-key load de-duplication.
package readcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/light-bringer/partner-profile-service/internal/pkg/clock"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache holds up to size values for ttl each.
type Cache[V any] struct {
	entries *lru.Cache[string, entry[V]]
	ttl     time.Duration
	clock   clock.Clock
	group   singleflight.Group

	mu          sync.Mutex
	generations map[string]uint64
}

// New creates a cache. size must be positive.
func New[V any](size int, ttl time.Duration, clk clock.Clock) (*Cache[V], error) {
	entries, err := lru.New[string, entry[V]](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &Cache[V]{
		entries:     entries,
		ttl:         ttl,
		clock:       clk,
		generations: make(map[string]uint64),
	}, nil
}

// Get returns the cached value for key if it has not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	e, ok := c.entries.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if c.clock.Now().Sub(e.storedAt) >= c.ttl {
		c.entries.Remove(key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Add stores value under key.
func (c *Cache[V]) Add(key string, value V) {
	c.entries.Add(key, entry[V]{value: value, storedAt: c.clock.Now()})
}

// Remove drops key. A load already in flight for key will not repopulate it.
func (c *Cache[V]) Remove(key string) {
	c.mu.Lock()
	c.generations[key]++
	c.mu.Unlock()

	c.group.Forget(key)
	c.entries.Remove(key)
}

// Len returns the number of entries, including expired ones not yet evicted.
func (c *Cache[V]) Len() int {
	return c.entries.Len()
}

// GetOrLoad returns the cached value or calls load once for all concurrent
// callers of the same key. Errors are not cached.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	gen := c.generation(key)
	res, err, _ := c.group.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return v, err
		}
		if c.generation(key) == gen {
			c.Add(key, v)
		}
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

func (c *Cache[V]) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key]
}
