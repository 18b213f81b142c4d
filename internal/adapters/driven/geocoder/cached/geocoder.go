// Package cached wraps a driven.Geocoder with a driven.GeocodeCache.
package cached

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driven"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// Ensure Geocoder implements the interface.
var _ driven.Geocoder = (*Geocoder)(nil)

// Geocoder serves repeat lookups from a cache. Keys are normalised postcodes,
// so "ls1 1aa" and "LS1  1AA" share an entry. Only successful lookups are
// stored; failures always reach the underlying geocoder on the next call.
type Geocoder struct {
	next  driven.Geocoder
	cache driven.GeocodeCache

	// group collapses concurrent lookups of the same key into one call.
	group singleflight.Group
}

// New creates a caching decorator around next.
func New(next driven.Geocoder, cache driven.GeocodeCache) *Geocoder {
	return &Geocoder{
		next:  next,
		cache: cache,
	}
}

// Geocode returns the cached coordinate for text, resolving it through the
// wrapped geocoder on a miss.
//
// A shared lookup is not cancelled with the caller that started it; each
// caller stops waiting when its own ctx ends.
func (g *Geocoder) Geocode(ctx context.Context, text string) (domain.Coordinate, error) {
	key := domain.NormalisePostcode(text)
	if key == "" {
		return domain.Coordinate{}, domain.ErrPostcodeNotFound
	}

	if coord, ok := g.cache.Get(key); ok {
		logger.Debug("Geocode cache hit for %q", key)
		return coord, nil
	}

	lookupCtx := context.WithoutCancel(ctx)
	ch := g.group.DoChan(key, func() (any, error) {
		if coord, ok := g.cache.Get(key); ok {
			return coord, nil
		}
		logger.Debug("Geocode cache miss for %q", key)
		coord, err := g.next.Geocode(lookupCtx, key)
		if err != nil {
			return nil, err
		}
		g.cache.Set(key, coord)
		return coord, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.Coordinate{}, res.Err
		}
		coord, _ := res.Val.(domain.Coordinate)
		return coord, nil
	case <-ctx.Done():
		return domain.Coordinate{}, ctx.Err()
	}
}
