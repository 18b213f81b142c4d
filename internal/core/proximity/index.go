package proximity

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// R-tree shape. Two dimensions: longitude, latitude.
const (
	treeDimensions  = 2
	treeMinChildren = 25
	treeMaxChildren = 50

	// pointTolerance is the half-width of the rectangle stored per point.
	pointTolerance = 1e-9

	// boxMargin widens the search box to absorb rounding at its edges.
	boxMargin = 1e-6
)

// entry is a dataset location stored in the tree.
type entry struct {
	pos  int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index answers radius queries over a fixed dataset using an R-tree
// bounding-box prefilter followed by an exact haversine check.
type Index struct {
	tree      *rtreego.Rtree
	locations []domain.Location
}

// NewIndex builds an index over a copy of dataset.
func NewIndex(dataset []domain.Location) *Index {
	locations := make([]domain.Location, len(dataset))
	copy(locations, dataset)

	entries := make([]rtreego.Spatial, len(locations))
	for i := range locations {
		p := rtreego.Point{locations[i].Longitude, locations[i].Latitude}
		entries[i] = &entry{pos: i, rect: p.ToRect(pointTolerance)}
	}

	return &Index{
		// Bulk load; the tree is never modified afterwards.
		tree:      rtreego.NewTree(treeDimensions, treeMinChildren, treeMaxChildren, entries...),
		locations: locations,
	}
}

// Len returns the number of indexed locations.
func (ix *Index) Len() int {
	return len(ix.locations)
}

// Locations returns a copy of the indexed dataset in its original order.
func (ix *Index) Locations() []domain.Location {
	out := make([]domain.Location, len(ix.locations))
	copy(out, ix.locations)
	return out
}

// FindNearest returns the same result as the package-level FindNearest over
// the indexed dataset.
func (ix *Index) FindNearest(query domain.Coordinate, radiusMiles float64) []domain.NearbyLocation {
	if len(ix.locations) == 0 {
		return []domain.NearbyLocation{}
	}

	box, ok := searchBox(query, radiusMiles)
	if !ok {
		return FindNearest(query, ix.locations, radiusMiles)
	}

	hits := ix.tree.SearchIntersect(box)
	candidates := make([]candidate, 0, len(hits))
	for _, hit := range hits {
		e, ok := hit.(*entry)
		if !ok {
			continue
		}
		d := Distance(query, ix.locations[e.pos].Coordinate())
		if d <= radiusMiles {
			candidates = append(candidates, candidate{pos: e.pos, distance: d})
		}
	}

	return rank(ix.locations, candidates)
}

// searchBox returns a lon/lat rectangle containing every point within
// radiusMiles of query. It reports false when no such rectangle exists in
// plain degree space: non-positive radius, a box reaching a pole, or a box
// crossing the antimeridian.
func searchBox(query domain.Coordinate, radiusMiles float64) (rtreego.Rect, bool) {
	if !(radiusMiles > 0) || math.IsInf(radiusMiles, 1) {
		return rtreego.Rect{}, false
	}

	angular := radiusMiles / EarthRadiusMiles
	lat := toRadians(query.Latitude)

	minLat := lat - angular
	maxLat := lat + angular
	if minLat <= -math.Pi/2 || maxLat >= math.Pi/2 {
		return rtreego.Rect{}, false
	}

	ratio := math.Sin(angular) / math.Cos(lat)
	if ratio >= 1 {
		return rtreego.Rect{}, false
	}
	dLon := math.Asin(ratio)

	lon := toRadians(query.Longitude)
	if lon-dLon < -math.Pi || lon+dLon > math.Pi {
		return rtreego.Rect{}, false
	}

	latSpan := angular*radToDeg + boxMargin
	lonSpan := dLon*radToDeg + boxMargin

	corner := rtreego.Point{query.Longitude - lonSpan, query.Latitude - latSpan}
	rect, err := rtreego.NewRect(corner, []float64{2 * lonSpan, 2 * latSpan})
	if err != nil {
		return rtreego.Rect{}, false
	}
	return rect, true
}
