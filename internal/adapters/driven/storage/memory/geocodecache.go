package memory

import (
	"sync"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driven"
)

// Ensure GeocodeCache implements the interface.
var _ driven.GeocodeCache = (*GeocodeCache)(nil)

// GeocodeCache keeps resolved postcodes in a map for the life of the process.
// Entries never expire; callers invalidate explicitly.
type GeocodeCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Coordinate
}

// NewGeocodeCache creates an empty geocode cache.
func NewGeocodeCache() *GeocodeCache {
	return &GeocodeCache{
		entries: make(map[string]domain.Coordinate),
	}
}

// Get returns the cached coordinate for key.
func (c *GeocodeCache) Get(key string) (domain.Coordinate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coord, ok := c.entries[key]
	return coord, ok
}

// Set stores a coordinate for key.
func (c *GeocodeCache) Set(key string, coord domain.Coordinate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = coord
}

// Delete removes key.
func (c *GeocodeCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes every entry.
func (c *GeocodeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of cached entries.
func (c *GeocodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
