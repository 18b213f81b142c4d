package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driven"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driving"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/proximity"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// Ensure FinderService implements the interface.
var _ driving.FinderService = (*FinderService)(nil)

// FinderService resolves a postcode and ranks the stores around it.
// The dataset is fixed at construction; the service is safe for concurrent use.
type FinderService struct {
	index    *proximity.Index
	geocoder driven.Geocoder
	cache    driven.GeocodeCache
	newID    func() string
}

// NewFinderService creates a finder over dataset.
// The cache parameter is optional (can be nil). When set it should be the
// same cache the geocoder reads through, so invalidation reaches it.
func NewFinderService(
	dataset []domain.Location,
	geocoder driven.Geocoder,
	cache driven.GeocodeCache,
) *FinderService {
	start := time.Now()
	index := proximity.NewIndex(dataset)
	logger.Debug("Indexed %d locations in %s", index.Len(), time.Since(start).Round(time.Microsecond))

	return &FinderService{
		index:    index,
		geocoder: geocoder,
		cache:    cache,
		newID:    uuid.NewString,
	}
}

// Find geocodes postcode and returns the nearest stores within the radius.
func (s *FinderService) Find(
	ctx context.Context, postcode string, opts domain.SearchOptions,
) (*domain.SearchResult, error) {
	logger.Section("Find")

	postcode = strings.TrimSpace(postcode)
	if postcode == "" {
		return nil, fmt.Errorf("%w: postcode is required", domain.ErrInvalidInput)
	}

	radius := opts.RadiusMiles
	if radius == 0 {
		radius = domain.DefaultRadiusMiles
	}
	if !domain.ValidRadius(radius) {
		return nil, fmt.Errorf("%w: radius must be between %g and %g miles, got %g",
			domain.ErrInvalidInput, domain.MinRadiusMiles, domain.MaxRadiusMiles, radius)
	}
	logger.Debug("Postcode: %q, radius: %g miles", postcode, radius)

	if s.geocoder == nil {
		return nil, domain.ErrGeocoderUnavailable
	}

	origin, err := s.geocoder.Geocode(ctx, postcode)
	if err != nil {
		logger.Debug("Geocode failed: %v", err)
		return nil, fmt.Errorf("geocode %q: %w", postcode, err)
	}
	if !origin.IsValid() {
		return nil, fmt.Errorf("geocode %q: %w: coordinate %s out of range",
			postcode, domain.ErrGeocoderUnavailable, origin)
	}
	logger.Debug("Origin: %s", origin)

	result := &domain.SearchResult{
		ID:          s.newID(),
		Postcode:    postcode,
		Origin:      origin,
		RadiusMiles: radius,
	}

	if s.index.Len() == 0 {
		result.Status = domain.StatusNoData
		result.Locations = []domain.NearbyLocation{}
		logger.Warn("Search %s ran against an empty dataset", result.ID)
		return result, nil
	}

	result.Locations = s.index.FindNearest(origin, radius)
	if len(result.Locations) == 0 {
		result.Status = domain.StatusNoMatches
	} else {
		result.Status = domain.StatusFound
	}
	logger.Debug("Search %s: %s, %d result(s)", result.ID, result.Status, len(result.Locations))

	return result, nil
}

// DatasetSize returns the number of loaded locations.
func (s *FinderService) DatasetSize() int {
	return s.index.Len()
}

// InvalidateGeocode forgets the cached coordinate for postcode.
func (s *FinderService) InvalidateGeocode(postcode string) {
	if s.cache == nil {
		return
	}
	key := domain.NormalisePostcode(postcode)
	s.cache.Delete(key)
	logger.Debug("Invalidated geocode for %q", key)
}

// ClearGeocodes forgets every cached coordinate.
func (s *FinderService) ClearGeocodes() {
	if s.cache == nil {
		return
	}
	n := s.cache.Len()
	s.cache.Clear()
	logger.Debug("Cleared %d cached geocode(s)", n)
}
