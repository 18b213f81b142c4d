package proximity

import (
	"math"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

const (
	earthRadiusKm = 6371.0
	kmToMiles     = 0.621371

	// EarthRadiusMiles is the mean Earth radius used for all distances.
	EarthRadiusMiles = earthRadiusKm * kmToMiles

	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func toRadians(deg float64) float64 {
	return deg * degToRad
}

// centralAngle returns the haversine central angle between a and b in radians.
func centralAngle(a, b domain.Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lon1 := toRadians(a.Longitude)
	lat2 := toRadians(b.Latitude)
	lon2 := toRadians(b.Longitude)

	sinDLat := math.Sin((lat2 - lat1) / 2)
	sinDLon := math.Sin((lon2 - lon1) / 2)

	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	return 2 * math.Asin(math.Sqrt(h))
}

// Distance returns the great-circle distance between a and b in miles.
// The angle is scaled by kilometres first and then converted, matching the
// km-to-miles product rather than a pre-rounded mile radius.
func Distance(a, b domain.Coordinate) float64 {
	return centralAngle(a, b) * earthRadiusKm * kmToMiles
}
