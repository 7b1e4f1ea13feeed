package memcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type TTLStore interface {
	Set(key string, value string, ttl time.Duration)

	// Get returns the value for key if present and not expired.
	Get(key string) (string, bool)

	Delete(key string)
}

type TTLCache struct {
	store *gocache.Cache
}

func NewTTLCache(defaultTTL, cleanupInterval time.Duration) *TTLCache {
	return &TTLCache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (s *TTLCache) Set(key string, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	s.store.Set(key, value, ttl)
}

func (s *TTLCache) Get(key string) (string, bool) {
	v, ok := s.store.Get(key)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func (s *TTLCache) Delete(key string) {
	s.store.Delete(key)
}
