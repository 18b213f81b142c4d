package domain

import (
	"path/filepath"
	"strings"
)

// Default dataset column names, as exported by the store locator spreadsheet.
const (
	DefaultNameColumn      = "shopName"
	DefaultPostcodeColumn  = "address.postCode"
	DefaultLatitudeColumn  = "address.latitude"
	DefaultLongitudeColumn = "address.longitude"
)

// Default geocoder settings.
const (
	DefaultGeocoderBaseURL     = "https://api.opencagedata.com"
	DefaultGeocoderCountryCode = "gb"
	DefaultRequestsPerSecond   = 1.0
	DefaultGeocoderTimeoutSecs = 10
	DefaultServerAddr          = ":8080"
)

// DatasetFormat identifies how a dataset file is stored.
type DatasetFormat string

// Supported dataset formats.
const (
	DatasetFormatExcel  DatasetFormat = "excel"
	DatasetFormatCSV    DatasetFormat = "csv"
	DatasetFormatSQLite DatasetFormat = "sqlite"
)

// DatasetFormatFromPath infers the format from a file extension.
// Returns an empty format for unknown extensions.
func DatasetFormatFromPath(path string) DatasetFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return DatasetFormatExcel
	case ".csv":
		return DatasetFormatCSV
	case ".db", ".sqlite", ".sqlite3":
		return DatasetFormatSQLite
	default:
		return ""
	}
}

// DatasetSettings describes where the location dataset lives and how its
// columns are named.
type DatasetSettings struct {
	// Path is the dataset file.
	Path string

	// Sheet is the worksheet name for spreadsheets. Empty means the first sheet.
	Sheet string

	// NameColumn holds the store name.
	NameColumn string

	// PostcodeColumn holds the store postcode.
	PostcodeColumn string

	// LatitudeColumn holds the latitude in degrees.
	LatitudeColumn string

	// LongitudeColumn holds the longitude in degrees.
	LongitudeColumn string
}

// IsConfigured returns true if a dataset path is set.
func (d DatasetSettings) IsConfigured() bool {
	return d.Path != ""
}

// GeocoderSettings holds the OpenCage geocoder configuration.
type GeocoderSettings struct {
	// APIKey authenticates against the geocoding API.
	APIKey string

	// BaseURL is the API endpoint.
	BaseURL string

	// CountryCode restricts results to one country (ISO 3166-1 alpha-2).
	CountryCode string

	// RequestsPerSecond throttles outgoing requests.
	RequestsPerSecond float64

	// TimeoutSeconds bounds each request.
	TimeoutSeconds int
}

// IsConfigured returns true if the geocoder can be used.
func (g GeocoderSettings) IsConfigured() bool {
	return g.APIKey != ""
}

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// DefaultRadiusMiles is the radius offered by interactive front ends.
	DefaultRadiusMiles float64
}

// ServerSettings holds the HTTP API configuration.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Dataset  DatasetSettings
	Geocoder GeocoderSettings
	Search   SearchSettings
	Server   ServerSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The dataset path and API key are left empty; users must configure them.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Dataset: DatasetSettings{
			NameColumn:      DefaultNameColumn,
			PostcodeColumn:  DefaultPostcodeColumn,
			LatitudeColumn:  DefaultLatitudeColumn,
			LongitudeColumn: DefaultLongitudeColumn,
		},
		Geocoder: GeocoderSettings{
			BaseURL:           DefaultGeocoderBaseURL,
			CountryCode:       DefaultGeocoderCountryCode,
			RequestsPerSecond: DefaultRequestsPerSecond,
			TimeoutSeconds:    DefaultGeocoderTimeoutSecs,
		},
		Search: SearchSettings{
			DefaultRadiusMiles: DefaultRadiusMiles,
		},
		Server: ServerSettings{
			Addr: DefaultServerAddr,
		},
	}
}

// ValidRadius reports whether r is within the accepted radius range.
func ValidRadius(r float64) bool {
	return r >= MinRadiusMiles && r <= MaxRadiusMiles
}
