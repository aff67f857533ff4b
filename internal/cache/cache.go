package cache

import (
	"time"

	"github.com/robfig/go-cache"
)

const (
	// CleanupInterval is how often expired cache entries are removed.
	CleanupInterval = 30 * time.Second
	// DefaultTTL is the catalog cache duration when config leaves it unset.
	DefaultTTL = 30 * time.Second
)

// Cache wraps robfig/go-cache for catalog and poller reads.
type Cache struct {
	store     *cache.Cache
	ttl       time.Duration
	pollerTTL time.Duration
}

// New creates an in-memory cache.
// A zero ttl disables caching for every key. A zero pollerTTL disables only poller caching.
func New(ttl, pollerTTL time.Duration) *Cache {
	return &Cache{
		store:     cache.New(0, CleanupInterval),
		ttl:       ttl,
		pollerTTL: pollerTTL,
	}
}

// Set stores value under key.
// A zero ttl uses the default TTL and a negative ttl skips the item.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	if c.ttl == 0 {
		return
	}

	if ttl == 0 {
		ttl = c.ttl
	} else if ttl < 0 {
		return
	}

	c.store.Set(key, value, ttl)
}

// Get returns the value and true when present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	if c.ttl == 0 {
		return nil, false
	}

	return c.store.Get(key)
}

// IsEnabled -.
func (c *Cache) IsEnabled() bool {
	return c.ttl > 0
}

// GetTTL -.
func (c *Cache) GetTTL() time.Duration {
	return c.ttl
}

// GetPollerTTL returns the poller TTL, or -1 when poller caching is off.
func (c *Cache) GetPollerTTL() time.Duration {
	if c.pollerTTL == 0 {
		return -1
	}

	return c.pollerTTL
}

// Delete -.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// Clear -.
func (c *Cache) Clear() {
	c.store.Flush()
}
