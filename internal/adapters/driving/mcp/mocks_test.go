package mcp

import (
	"context"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// mockFinderService is a mock implementation of driving.FinderService.
type mockFinderService struct {
	result *domain.SearchResult
	err    error
	size   int

	gotPostcode string
	gotOpts     domain.SearchOptions
}

func (m *mockFinderService) Find(
	_ context.Context,
	postcode string,
	opts domain.SearchOptions,
) (*domain.SearchResult, error) {
	m.gotPostcode = postcode
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.SearchResult{
		Postcode:    postcode,
		RadiusMiles: opts.RadiusMiles,
		Status:      domain.StatusNoMatches,
		Locations:   []domain.NearbyLocation{},
	}, nil
}

func (m *mockFinderService) DatasetSize() int { return m.size }

func (m *mockFinderService) InvalidateGeocode(string) {}

func (m *mockFinderService) ClearGeocodes() {}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	radius float64
	err    error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := domain.DefaultAppSettings()
	s.Search.DefaultRadiusMiles = m.radius
	return &s, nil
}

func (m *mockSettingsService) Save(*domain.AppSettings) error { return nil }

func (m *mockSettingsService) SetGeocoderAPIKey(string) error { return nil }

func (m *mockSettingsService) SetDatasetPath(string) error { return nil }

func (m *mockSettingsService) SetDefaultRadius(float64) error { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *mockSettingsService) Validate() error { return nil }

func foundResult() *domain.SearchResult {
	return &domain.SearchResult{
		ID:          "search-1",
		Postcode:    "NE1 4ST",
		RadiusMiles: 10,
		Status:      domain.StatusFound,
		Locations: []domain.NearbyLocation{
			{Name: "Grainger Street", Postcode: "NE1 5JQ", DistanceMiles: 0.21},
			{Name: "Eldon Square", Postcode: "NE1 7XZ", DistanceMiles: 0.44},
		},
	}
}
