package cache

import (
	"context"
	"sync"
	"time"

	"portfolio-pulse/internal/domain"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is an in-process domain.Cache used when Redis is not
// configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var _ domain.Cache = (*MemoryCache)(nil)

// NewMemory creates an empty cache.
func NewMemory() *MemoryCache {
	return &MemoryCache{entries: make(map[string]entry)}
}

// Set stores the value under key with the given TTL.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	c.entries[key] = entry{value: copied, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get returns the value, or domain.ErrCacheMiss when the key is absent or
// expired.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, domain.ErrCacheMiss
	}
	return e.value, nil
}
