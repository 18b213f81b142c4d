// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// PostcodeChanged is sent when the postcode input changes.
type PostcodeChanged struct {
	Postcode string
}

// RadiusChanged is sent when the radius slider moves.
type RadiusChanged struct {
	Miles float64
}

// SearchRequested is a command to perform a search.
type SearchRequested struct {
	Postcode string
	Options  domain.SearchOptions
}

// SearchCompleted carries the search outcome back to the model.
// Seq matches the request that produced it so stale outcomes can be dropped.
type SearchCompleted struct {
	Seq    uint64
	Result *domain.SearchResult
	Err    error
}

// CacheCleared signals the geocode cache was emptied.
type CacheCleared struct{}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the postcode input and results view.
	ViewSearch ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}
