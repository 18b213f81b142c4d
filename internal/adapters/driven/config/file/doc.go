// Package file provides the TOML-backed configuration store.
//
// Keys are dot-separated ("geocoder.api_key") and map onto TOML tables:
//
//	[geocoder]
//	api_key = "..."
package file
