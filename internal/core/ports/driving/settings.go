package driving

import "github.com/Jacobp93/Greggs-Location-app/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetGeocoderAPIKey stores the geocoding API key.
	SetGeocoderAPIKey(apiKey string) error

	// SetDatasetPath points the finder at a dataset file.
	SetDatasetPath(path string) error

	// SetDefaultRadius updates the radius offered by interactive front ends.
	SetDefaultRadius(miles float64) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Validate checks that the settings are complete enough to search.
	Validate() error
}
