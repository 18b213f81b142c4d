package domain

import "fmt"

// Coordinate bounds in degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinate is a point on the globe in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsValid reports whether both components are within their ranges.
// NaN fails every comparison and is therefore invalid.
func (c Coordinate) IsValid() bool {
	return c.Latitude >= MinLatitude && c.Latitude <= MaxLatitude &&
		c.Longitude >= MinLongitude && c.Longitude <= MaxLongitude
}

// String formats the coordinate as "lat,lon".
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}

// Location is a single store record from the dataset.
// Records are read-only once loaded.
type Location struct {
	// Name is the display name of the store.
	Name string `json:"name"`

	// Postcode is the store's own postcode.
	Postcode string `json:"postcode"`

	// Latitude in degrees, within [-90, 90].
	Latitude float64 `json:"latitude"`

	// Longitude in degrees, within [-180, 180].
	Longitude float64 `json:"longitude"`
}

// Coordinate returns the location's position.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}

// NearbyLocation is a location ranked by distance from a query point.
// It is a fresh value and never aliases the dataset record.
type NearbyLocation struct {
	Name          string  `json:"name"`
	Postcode      string  `json:"postcode"`
	DistanceMiles float64 `json:"distance_miles"`
}
