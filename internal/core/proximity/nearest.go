package proximity

import (
	"sort"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// candidate is a dataset position with its distance from the query.
type candidate struct {
	pos      int
	distance float64
}

// FindNearest returns up to domain.MaxResults locations from dataset whose
// distance from query is at most radiusMiles, nearest first. Locations at
// equal distance keep their dataset order. An empty dataset or a radius that
// matches nothing yields an empty, non-nil slice.
func FindNearest(query domain.Coordinate, dataset []domain.Location, radiusMiles float64) []domain.NearbyLocation {
	if len(dataset) == 0 {
		return []domain.NearbyLocation{}
	}

	candidates := make([]candidate, 0, len(dataset))
	for i := range dataset {
		d := Distance(query, dataset[i].Coordinate())
		if d <= radiusMiles {
			candidates = append(candidates, candidate{pos: i, distance: d})
		}
	}

	return rank(dataset, candidates)
}

// rank orders candidates by distance then dataset position, keeps the first
// domain.MaxResults and copies them out of the dataset.
func rank(dataset []domain.Location, candidates []candidate) []domain.NearbyLocation {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].pos < candidates[j].pos
	})

	if len(candidates) > domain.MaxResults {
		candidates = candidates[:domain.MaxResults]
	}

	results := make([]domain.NearbyLocation, len(candidates))
	for i, c := range candidates {
		loc := dataset[c.pos]
		results[i] = domain.NearbyLocation{
			Name:          loc.Name,
			Postcode:      loc.Postcode,
			DistanceMiles: c.distance,
		}
	}
	return results
}
