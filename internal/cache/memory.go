package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/ppiankov/typechart/internal/model"
)

// MemoryCache implements in-process caching
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a report from the cache
func (c *MemoryCache) Get(key string) (*model.Report, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*model.Report), true
	}
	return nil, false
}

// Set stores a report with the given TTL (0 uses the default)
func (c *MemoryCache) Set(key string, report *model.Report, ttl time.Duration) {
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, report, ttl)
}

// Len returns the number of cached reports
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
