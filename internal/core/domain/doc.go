// Package domain defines the core business entities for the location finder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Location: A point of interest (store) from the dataset
//   - Coordinate: A latitude/longitude pair, e.g. a geocoded postcode
//   - NearbyLocation: A location ranked by distance from a query point
//   - SearchResult: The tagged outcome of a postcode search
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
