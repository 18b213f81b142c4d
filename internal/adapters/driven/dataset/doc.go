// Package dataset selects a driven.LocationLoader for a dataset file.
//
// Loaders live in sub-packages, one per storage format:
//
//   - excel: .xlsx/.xlsm workbooks (the store locator export)
//   - csvfile: comma-separated text with a header row
//   - sqlite: a "locations" table in a SQLite database
//
// All loaders share the header mapping and row validation in rows.
package dataset
