// Package httpapi serves the finder over a JSON HTTP API built on gin.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// ErrMissingFinderService is returned when the finder service is not provided.
var ErrMissingFinderService = errors.New("httpapi: finder service is required")

// Error codes returned in the "error" field of failure responses.
const (
	codeInvalidInput        = "invalid_input"
	codeInvalidPostcode     = "invalid_postcode"
	codeRateLimited         = "rate_limited"
	codeGeocoderUnavailable = "geocoder_unavailable"
	codeInternal            = "internal"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// toErrorResponse maps a finder error to its HTTP status and body.
func toErrorResponse(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, errorResponse{Error: codeInvalidInput, Message: err.Error()}
	case errors.Is(err, domain.ErrPostcodeNotFound):
		return http.StatusNotFound, errorResponse{Error: codeInvalidPostcode, Message: "Invalid postcode."}
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, errorResponse{
			Error:   codeRateLimited,
			Message: "Geocoding limit reached, try again shortly.",
		}
	case errors.Is(err, domain.ErrGeocoderUnavailable):
		return http.StatusServiceUnavailable, errorResponse{
			Error:   codeGeocoderUnavailable,
			Message: "Geocoder unavailable.",
		}
	default:
		return http.StatusInternalServerError, errorResponse{Error: codeInternal, Message: "Internal error."}
	}
}
