package tui

import "errors"

// ErrMissingFinderService is returned when the finder service is not provided.
var ErrMissingFinderService = errors.New("tui: finder service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
