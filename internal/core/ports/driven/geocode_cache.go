package driven

import "github.com/Jacobp93/Greggs-Location-app/internal/core/domain"

// GeocodeCache remembers resolved postcodes for the lifetime of a process.
// Keys are normalised by the caller. Implementations must be safe for
// concurrent use.
type GeocodeCache interface {
	// Get returns the cached coordinate for key.
	Get(key string) (domain.Coordinate, bool)

	// Set stores a coordinate for key, replacing any previous value.
	Set(key string, coord domain.Coordinate)

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(key string)

	// Clear removes every entry.
	Clear()

	// Len returns the number of cached entries.
	Len() int
}
