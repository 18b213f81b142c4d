// Package geocoder groups the driven.Geocoder implementations.
//
//   - opencage: the OpenCage forward geocoding API
//   - cached: a decorator that remembers successful lookups
package geocoder
