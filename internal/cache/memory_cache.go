package cache

import (
	"context"
	"path"
	"sync"
	"sync/atomic"
	"time"
)

type cacheItem struct {
	value      []byte
	expiration time.Time
}

func (i *cacheItem) expired(now time.Time) bool {
	return now.After(i.expiration)
}

// MemoryCache implements Cache with an in-process map. When MaxKeys is
// reached the entry closest to expiry is evicted.
type MemoryCache struct {
	mu        sync.RWMutex
	items     map[string]*cacheItem
	maxKeys   int
	hits      int64
	misses    int64
	evictions int64
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryCache creates a memory cache. A positive cleanupInterval starts a
// goroutine that drops expired entries until Close is called.
func NewMemoryCache(maxKeys int, cleanupInterval time.Duration) *MemoryCache {
	c := &MemoryCache{
		items:   make(map[string]*cacheItem),
		maxKeys: maxKeys,
		done:    make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go c.cleanup(cleanupInterval)
	}
	return c
}

// Get retrieves a value from cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || item.expired(time.Now()) {
		atomic.AddInt64(&c.misses, 1)
		return nil, ErrKeyNotFound
	}

	atomic.AddInt64(&c.hits, 1)
	out := make([]byte, len(item.value))
	copy(out, item.value)
	return out, nil
}

// Set stores a copy of value with expiration
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	v := make([]byte, len(value))
	copy(v, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && c.maxKeys > 0 && len(c.items) >= c.maxKeys {
		c.evictOne()
	}
	c.items[key] = &cacheItem{value: v, expiration: time.Now().Add(ttl)}
	return nil
}

// Delete removes a value from cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

// DeletePattern removes all keys matching pattern (* and ? wildcards)
func (c *MemoryCache) DeletePattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if ok, _ := path.Match(pattern, key); ok {
			delete(c.items, key)
		}
	}
	return nil
}

// Close stops the cleanup goroutine and drops all entries
func (c *MemoryCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.mu.Lock()
		c.items = make(map[string]*cacheItem)
		c.mu.Unlock()
	})
	return nil
}

// Stats returns cache statistics
func (c *MemoryCache) Stats() CacheStats {
	c.mu.RLock()
	keys := int64(len(c.items))
	c.mu.RUnlock()

	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	return CacheStats{
		Hits:      hits,
		Misses:    misses,
		HitRatio:  hitRatio(hits, misses),
		Keys:      keys,
		Evictions: atomic.LoadInt64(&c.evictions),
	}
}

// evictOne must be called with mu held.
func (c *MemoryCache) evictOne() {
	var victim string
	var earliest time.Time
	for key, item := range c.items {
		if victim == "" || item.expiration.Before(earliest) {
			victim, earliest = key, item.expiration
		}
	}
	if victim != "" {
		delete(c.items, victim)
		atomic.AddInt64(&c.evictions, 1)
	}
}

func (c *MemoryCache) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, item := range c.items {
				if item.expired(now) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}
