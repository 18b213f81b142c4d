package mcp

import (
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Finder runs postcode searches.
	Finder driving.FinderService

	// Settings supplies the default radius for the dataset resource.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Finder == nil {
		return ErrMissingFinderService
	}
	// Settings is optional; defaults apply without it.
	return nil
}
