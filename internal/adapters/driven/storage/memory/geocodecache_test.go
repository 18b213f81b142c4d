package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

func TestGeocodeCache_GetMissing(t *testing.T) {
	cache := NewGeocodeCache()

	_, ok := cache.Get("LS1 1AA")

	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestGeocodeCache_SetGetDelete(t *testing.T) {
	cache := NewGeocodeCache()
	leeds := domain.Coordinate{Latitude: 53.7997, Longitude: -1.5492}

	cache.Set("LS1 1AA", leeds)
	got, ok := cache.Get("LS1 1AA")
	assert.True(t, ok)
	assert.Equal(t, leeds, got)
	assert.Equal(t, 1, cache.Len())

	cache.Delete("LS1 1AA")
	_, ok = cache.Get("LS1 1AA")
	assert.False(t, ok)

	// Deleting again is a no-op.
	cache.Delete("LS1 1AA")
	assert.Equal(t, 0, cache.Len())
}

func TestGeocodeCache_SetReplaces(t *testing.T) {
	cache := NewGeocodeCache()

	cache.Set("K", domain.Coordinate{Latitude: 1, Longitude: 1})
	cache.Set("K", domain.Coordinate{Latitude: 2, Longitude: 2})

	got, _ := cache.Get("K")
	assert.Equal(t, domain.Coordinate{Latitude: 2, Longitude: 2}, got)
	assert.Equal(t, 1, cache.Len())
}

func TestGeocodeCache_Clear(t *testing.T) {
	cache := NewGeocodeCache()
	for i := 0; i < 5; i++ {
		cache.Set(fmt.Sprintf("K%d", i), domain.Coordinate{})
	}

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("K0")
	assert.False(t, ok)
}

func TestGeocodeCache_ConcurrentAccess(t *testing.T) {
	cache := NewGeocodeCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("K%d", i%5)
			cache.Set(key, domain.Coordinate{Latitude: float64(i)})
			cache.Get(key)
			if i%10 == 0 {
				cache.Delete(key)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 5)
}
