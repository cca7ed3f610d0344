package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/transducer/pkg/ports"
)

// Cache implements ports.ResultCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[ports.CacheKey][]string
	mu   sync.RWMutex
}

// NewCache creates a new in-memory cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[ports.CacheKey][]string),
	}
}

// Get retrieves cached outputs.
func (c *Cache) Get(ctx context.Context, key ports.CacheKey) ([]string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	outputs, ok := c.data[key]
	if !ok {
		return nil, false, nil
	}
	// Copy on read so callers can't mutate the cached slice
	return slices.Clone(outputs), true, nil
}

// Set stores outputs.
func (c *Cache) Set(ctx context.Context, key ports.CacheKey, outputs []string) error {
	copied := slices.Clone(outputs)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = copied
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
