package proximity

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

var london = domain.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

func twoStores() []domain.Location {
	return []domain.Location{
		{Name: "A", Postcode: "AA1 1AA", Latitude: 51.5074, Longitude: -0.1278},
		{Name: "B", Postcode: "BB1 1BB", Latitude: 51.5174, Longitude: -0.1378},
	}
}

// northOf returns n stores spaced 0.01 degrees apart heading north from
// origin, listed furthest first so ranking has to reorder them.
func northOf(origin domain.Coordinate, n int) []domain.Location {
	locs := make([]domain.Location, 0, n)
	for i := n; i >= 1; i-- {
		locs = append(locs, domain.Location{
			Name:      fmt.Sprintf("S%d", i),
			Postcode:  fmt.Sprintf("S%d 1AA", i),
			Latitude:  origin.Latitude + 0.01*float64(i),
			Longitude: origin.Longitude,
		})
	}
	return locs
}

func TestFindNearest_EmptyDataset(t *testing.T) {
	got := FindNearest(london, nil, 10)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindNearest_TwoStoresWithinRadius(t *testing.T) {
	got := FindNearest(london, twoStores(), 10)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "AA1 1AA", got[0].Postcode)
	assert.Equal(t, 0.0, got[0].DistanceMiles)
	assert.Equal(t, "B", got[1].Name)
	assert.Equal(t, "BB1 1BB", got[1].Postcode)
	assert.InDelta(t, 0.8138, got[1].DistanceMiles, 0.001)
}

func TestFindNearest_SmallRadiusExcludesFurtherStore(t *testing.T) {
	got := FindNearest(london, twoStores(), 0.5)

	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, 0.0, got[0].DistanceMiles)
}

func TestFindNearest_NothingWithinRadius(t *testing.T) {
	far := []domain.Location{
		{Name: "Edinburgh", Postcode: "EH1 1AA", Latitude: 55.9533, Longitude: -3.1883},
	}

	got := FindNearest(london, far, 50)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindNearest_CapsAtFive(t *testing.T) {
	dataset := northOf(london, 7)

	got := FindNearest(london, dataset, 50)

	require.Len(t, got, domain.MaxResults)
	for i, want := range []string{"S1", "S2", "S3", "S4", "S5"} {
		assert.Equal(t, want, got[i].Name)
	}
}

func TestFindNearest_InclusiveBoundary(t *testing.T) {
	dataset := twoStores()
	radius := Distance(london, dataset[1].Coordinate())

	got := FindNearest(london, dataset, radius)

	require.Len(t, got, 2)
	assert.Equal(t, "B", got[1].Name)
	assert.Equal(t, radius, got[1].DistanceMiles)
}

func TestFindNearest_TiesKeepDatasetOrder(t *testing.T) {
	dataset := []domain.Location{
		{Name: "far", Postcode: "F1", Latitude: 51.6, Longitude: -0.1278},
		{Name: "first", Postcode: "T1", Latitude: 51.52, Longitude: -0.1278},
		{Name: "second", Postcode: "T2", Latitude: 51.52, Longitude: -0.1278},
		{Name: "third", Postcode: "T3", Latitude: 51.52, Longitude: -0.1278},
	}

	got := FindNearest(london, dataset, 10)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"first", "second", "third", "far"}, names(got))
}

func TestFindNearest_Idempotent(t *testing.T) {
	dataset := randomDataset(rand.New(rand.NewSource(7)), 500)

	first := FindNearest(london, dataset, 25)
	second := FindNearest(london, dataset, 25)

	assert.Equal(t, first, second)
}

func TestFindNearest_DoesNotMutateDataset(t *testing.T) {
	dataset := northOf(london, 7)
	before := make([]domain.Location, len(dataset))
	copy(before, dataset)

	_ = FindNearest(london, dataset, 50)

	assert.Equal(t, before, dataset)
}

func TestFindNearest_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		dataset := randomDataset(rng, 1+rng.Intn(300))
		query := randomUKPoint(rng)
		radius := 1 + rng.Float64()*49

		got := FindNearest(query, dataset, radius)

		assert.LessOrEqual(t, len(got), domain.MaxResults)
		for i := range got {
			assert.LessOrEqual(t, got[i].DistanceMiles, radius)
			assert.GreaterOrEqual(t, got[i].DistanceMiles, 0.0)
			if i > 0 {
				assert.LessOrEqual(t, got[i-1].DistanceMiles, got[i].DistanceMiles)
			}
		}
	}
}

func names(results []domain.NearbyLocation) []string {
	out := make([]string, len(results))
	for i := range results {
		out[i] = results[i].Name
	}
	return out
}

// randomUKPoint returns a point inside a box roughly covering Great Britain.
func randomUKPoint(rng *rand.Rand) domain.Coordinate {
	return domain.Coordinate{
		Latitude:  50 + rng.Float64()*8,
		Longitude: -5.5 + rng.Float64()*7,
	}
}

func randomDataset(rng *rand.Rand, n int) []domain.Location {
	locs := make([]domain.Location, n)
	for i := range locs {
		p := randomUKPoint(rng)
		locs[i] = domain.Location{
			Name:      fmt.Sprintf("store-%d", i),
			Postcode:  fmt.Sprintf("PC%d", i),
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		}
	}
	return locs
}
