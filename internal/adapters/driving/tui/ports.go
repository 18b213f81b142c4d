// Package tui provides an interactive terminal user interface for the finder.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Finder runs postcode searches.
	Finder driving.FinderService

	// Settings supplies the default radius. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(finder driving.FinderService, settings driving.SettingsService) *Ports {
	return &Ports{
		Finder:   finder,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Finder == nil {
		return ErrMissingFinderService
	}
	return nil
}
