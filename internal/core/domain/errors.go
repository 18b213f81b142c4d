package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a dataset file type that no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")

	// ErrDatasetUnavailable indicates the location dataset could not be read.
	ErrDatasetUnavailable = errors.New("location dataset unavailable")

	// Geocoding Errors.

	// ErrPostcodeNotFound indicates the geocoder could not resolve the input.
	// Callers treat this as "no search performed".
	ErrPostcodeNotFound = errors.New("postcode not found")

	// ErrGeocoderUnavailable indicates the geocoder is not configured or
	// rejected our credentials.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")

	// ErrRateLimited indicates the geocoding quota or rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
