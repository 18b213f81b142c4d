package domain

// Search limits. The UI constrains the radius to [MinRadiusMiles, MaxRadiusMiles].
const (
	// DefaultRadiusMiles is used when no radius is given.
	DefaultRadiusMiles = 10.0

	// MinRadiusMiles is the smallest radius accepted from callers.
	MinRadiusMiles = 1.0

	// MaxRadiusMiles is the largest radius accepted from callers.
	MaxRadiusMiles = 50.0

	// MaxResults is the number of nearest locations returned.
	MaxResults = 5
)

// SearchOptions configures a postcode search.
type SearchOptions struct {
	// RadiusMiles is the search radius. Zero means DefaultRadiusMiles.
	RadiusMiles float64
}

// SearchStatus tags the outcome of a search so callers can tell an empty
// dataset apart from a search that matched nothing.
type SearchStatus string

// Available search statuses.
const (
	// StatusFound means at least one location was within the radius.
	StatusFound SearchStatus = "found"

	// StatusNoData means the dataset is empty.
	StatusNoData SearchStatus = "no_data"

	// StatusNoMatches means no location was within the radius.
	StatusNoMatches SearchStatus = "no_matches"
)

// String returns the string representation.
func (s SearchStatus) String() string {
	return string(s)
}

// Message returns the user-facing text for an empty outcome.
func (s SearchStatus) Message() string {
	switch s {
	case StatusNoData:
		return "No location data loaded."
	case StatusNoMatches:
		return "No locations found within that radius."
	case StatusFound:
		return ""
	default:
		return ""
	}
}

// SearchResult is the outcome of a postcode search.
type SearchResult struct {
	// ID identifies this search in logs and API responses.
	ID string `json:"id"`

	// Postcode is the query as entered, trimmed.
	Postcode string `json:"postcode"`

	// Origin is the geocoded query point.
	Origin Coordinate `json:"origin"`

	// RadiusMiles is the effective radius used.
	RadiusMiles float64 `json:"radius_miles"`

	// Status tags the outcome.
	Status SearchStatus `json:"status"`

	// Locations holds up to MaxResults entries, nearest first.
	Locations []NearbyLocation `json:"locations"`
}

// IsEmpty returns true if no locations were returned.
func (r *SearchResult) IsEmpty() bool {
	return len(r.Locations) == 0
}
