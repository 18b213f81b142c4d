package driving

import (
	"context"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// FinderService finds the stores nearest to a postcode.
type FinderService interface {
	// Find geocodes postcode and returns the nearest stores within the
	// radius in opts. A zero radius uses domain.DefaultRadiusMiles.
	Find(ctx context.Context, postcode string, opts domain.SearchOptions) (*domain.SearchResult, error)

	// DatasetSize returns the number of loaded locations.
	DatasetSize() int

	// InvalidateGeocode forgets the cached coordinate for postcode.
	InvalidateGeocode(postcode string)

	// ClearGeocodes forgets every cached coordinate.
	ClearGeocodes()
}
