package driven

import (
	"context"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// Geocoder resolves free-text postcodes to coordinates.
type Geocoder interface {
	// Geocode returns the coordinate for text.
	// Returns domain.ErrPostcodeNotFound when the text cannot be resolved,
	// domain.ErrRateLimited when the provider is throttling, and
	// domain.ErrGeocoderUnavailable when the provider cannot be reached
	// or rejects the credentials.
	Geocode(ctx context.Context, text string) (domain.Coordinate, error)
}
