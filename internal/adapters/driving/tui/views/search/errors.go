package search

import (
	"errors"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// Error definitions for the search view.
var (
	// ErrNoFinderService indicates that no finder service was provided.
	ErrNoFinderService = errors.New("finder service is required")
)

// describeError turns a search failure into the text shown to the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, domain.ErrPostcodeNotFound):
		return "Invalid postcode."
	case errors.Is(err, domain.ErrRateLimited):
		return "Geocoding limit reached, try again shortly."
	case errors.Is(err, domain.ErrGeocoderUnavailable):
		return "Geocoder unavailable: check the API key in settings."
	case errors.Is(err, domain.ErrInvalidInput):
		return "Enter a postcode to search."
	default:
		return "Error: " + err.Error()
	}
}
