package httpapi

import (
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the HTTP API.
type Ports struct {
	// Finder runs postcode searches.
	Finder driving.FinderService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Finder == nil {
		return ErrMissingFinderService
	}
	return nil
}
