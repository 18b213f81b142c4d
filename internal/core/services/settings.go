package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driven"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// EnvGeocoderAPIKey overrides the configured geocoder API key when set.
//
//nolint:gosec // G101: This is an environment variable name, not a credential.
const EnvGeocoderAPIKey = "OPENCAGE_API_KEY"

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyDatasetPath         = "dataset.path"
	keyDatasetSheet        = "dataset.sheet"
	keyNameColumn          = "dataset.name_column"
	keyPostcodeColumn      = "dataset.postcode_column"
	keyLatitudeColumn      = "dataset.latitude_column"
	keyLongitudeColumn     = "dataset.longitude_column"
	keyGeocoderAPIKey      = "geocoder.api_key"
	keyGeocoderBaseURL     = "geocoder.base_url"
	keyGeocoderCountry     = "geocoder.country_code"
	keyGeocoderRPS         = "geocoder.requests_per_second"
	keyGeocoderTimeout     = "geocoder.timeout_seconds"
	keySearchDefaultRadius = "search.default_radius"
	keyServerAddr          = "server.addr"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings.
// Missing keys fall back to defaults; the API key environment variable wins
// over the stored key.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Dataset: domain.DatasetSettings{
			Path:            s.configStore.GetString(keyDatasetPath),
			Sheet:           s.configStore.GetString(keyDatasetSheet),
			NameColumn:      s.getString(keyNameColumn, defaults.Dataset.NameColumn),
			PostcodeColumn:  s.getString(keyPostcodeColumn, defaults.Dataset.PostcodeColumn),
			LatitudeColumn:  s.getString(keyLatitudeColumn, defaults.Dataset.LatitudeColumn),
			LongitudeColumn: s.getString(keyLongitudeColumn, defaults.Dataset.LongitudeColumn),
		},
		Geocoder: domain.GeocoderSettings{
			APIKey:            s.configStore.GetString(keyGeocoderAPIKey),
			BaseURL:           s.getString(keyGeocoderBaseURL, defaults.Geocoder.BaseURL),
			CountryCode:       s.getString(keyGeocoderCountry, defaults.Geocoder.CountryCode),
			RequestsPerSecond: s.getFloat(keyGeocoderRPS, defaults.Geocoder.RequestsPerSecond),
			TimeoutSeconds:    s.getInt(keyGeocoderTimeout, defaults.Geocoder.TimeoutSeconds),
		},
		Search: domain.SearchSettings{
			DefaultRadiusMiles: s.getRadius(defaults.Search.DefaultRadiusMiles),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
	}

	if key := strings.TrimSpace(s.getenv(EnvGeocoderAPIKey)); key != "" {
		settings.Geocoder.APIKey = key
	}

	return settings, nil
}

// Save persists application settings.
// The API key is only written when non-empty and not supplied by the
// environment.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	strs := []struct {
		key, value string
	}{
		{keyDatasetPath, settings.Dataset.Path},
		{keyDatasetSheet, settings.Dataset.Sheet},
		{keyNameColumn, settings.Dataset.NameColumn},
		{keyPostcodeColumn, settings.Dataset.PostcodeColumn},
		{keyLatitudeColumn, settings.Dataset.LatitudeColumn},
		{keyLongitudeColumn, settings.Dataset.LongitudeColumn},
		{keyGeocoderBaseURL, settings.Geocoder.BaseURL},
		{keyGeocoderCountry, settings.Geocoder.CountryCode},
		{keyServerAddr, settings.Server.Addr},
	}
	for _, kv := range strs {
		if err := s.configStore.Set(kv.key, kv.value); err != nil {
			return fmt.Errorf("save %s: %w", kv.key, err)
		}
	}

	if settings.Geocoder.APIKey != "" && settings.Geocoder.APIKey != s.getenv(EnvGeocoderAPIKey) {
		if err := s.configStore.Set(keyGeocoderAPIKey, settings.Geocoder.APIKey); err != nil {
			return fmt.Errorf("save geocoder api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyGeocoderRPS, settings.Geocoder.RequestsPerSecond); err != nil {
		return fmt.Errorf("save geocoder requests_per_second: %w", err)
	}
	if err := s.configStore.Set(keyGeocoderTimeout, settings.Geocoder.TimeoutSeconds); err != nil {
		return fmt.Errorf("save geocoder timeout_seconds: %w", err)
	}
	if err := s.configStore.Set(keySearchDefaultRadius, settings.Search.DefaultRadiusMiles); err != nil {
		return fmt.Errorf("save search default_radius: %w", err)
	}

	return nil
}

// SetGeocoderAPIKey stores the geocoding API key.
func (s *SettingsService) SetGeocoderAPIKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return fmt.Errorf("%w: API key is required", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(keyGeocoderAPIKey, apiKey); err != nil {
		return fmt.Errorf("save geocoder api_key: %w", err)
	}
	return nil
}

// SetDatasetPath points the finder at a dataset file.
// The file must exist and have a supported extension.
func (s *SettingsService) SetDatasetPath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: dataset path is required", domain.ErrInvalidInput)
	}
	if domain.DatasetFormatFromPath(path) == "" {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}
	if err := s.configStore.Set(keyDatasetPath, path); err != nil {
		return fmt.Errorf("save dataset path: %w", err)
	}
	return nil
}

// SetDefaultRadius updates the radius offered by interactive front ends.
func (s *SettingsService) SetDefaultRadius(miles float64) error {
	if !domain.ValidRadius(miles) {
		return fmt.Errorf("%w: radius must be between %g and %g miles, got %g",
			domain.ErrInvalidInput, domain.MinRadiusMiles, domain.MaxRadiusMiles, miles)
	}
	if err := s.configStore.Set(keySearchDefaultRadius, miles); err != nil {
		return fmt.Errorf("save search default_radius: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Validate checks that the settings are complete enough to search.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Dataset.IsConfigured() {
		return fmt.Errorf("%w: no dataset configured (run 'greggs-finder settings dataset <path>')",
			domain.ErrInvalidInput)
	}
	if !settings.Geocoder.IsConfigured() {
		return fmt.Errorf("%w: no geocoder API key (run 'greggs-finder settings set-key' or set %s)",
			domain.ErrGeocoderUnavailable, EnvGeocoderAPIKey)
	}
	if settings.Geocoder.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: geocoder requests_per_second must be positive", domain.ErrInvalidInput)
	}

	return nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getRadius(defaultVal float64) float64 {
	val := s.configStore.GetFloat(keySearchDefaultRadius)
	if !domain.ValidRadius(val) {
		return defaultVal
	}
	return val
}
