// Package cache provides the small expiring key-value store used to keep
// per-prompt git queries cheap. Values expire by TTL only; nothing is ever
// invalidated explicitly.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type Cache struct {
	store *gocache.Cache
}

func New() *Cache {
	return &Cache{
		store: gocache.New(gocache.NoExpiration, 5*time.Minute),
	}
}

func (c *Cache) Get(key string) (string, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (c *Cache) Set(key, value string, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}
