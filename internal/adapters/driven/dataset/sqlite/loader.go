// Package sqlite loads store locations from a table in a SQLite database and
// writes datasets out in the same shape.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/dataset/rows"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driven"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// DefaultTable is read when no table is configured.
const DefaultTable = "locations"

// Ensure Loader implements the interface.
var _ driven.LocationLoader = (*Loader)(nil)

// Loader reads a locations table. Column names come from the dataset
// settings, exactly as for spreadsheets; settings.Sheet names the table.
type Loader struct {
	settings domain.DatasetSettings
}

// New creates a SQLite loader.
func New(settings domain.DatasetSettings) *Loader {
	return &Loader{settings: settings}
}

func (l *Loader) table() string {
	if l.settings.Sheet != "" {
		return l.settings.Sheet
	}
	return DefaultTable
}

// Load reads every row of the table in rowid order.
func (l *Loader) Load(ctx context.Context) ([]domain.Location, error) {
	if _, err := os.Stat(l.settings.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}

	db, err := sql.Open("sqlite", l.settings.Path+"?_pragma=query_only(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", domain.ErrDatasetUnavailable, err)
	}
	defer db.Close()

	table := l.table()
	logger.Debug("Reading table %q of %s", table, l.settings.Path)

	//nolint:gosec // G202: the table name is quoted as an identifier.
	query := "SELECT * FROM " + quoteIdent(table) + " ORDER BY rowid"
	result, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", domain.ErrDatasetUnavailable, table, err)
	}
	defer result.Close()

	header, err := result.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: read columns: %w", domain.ErrDatasetUnavailable, err)
	}

	source := filepath.Base(l.settings.Path) + "#" + table
	cols, err := rows.Resolve(header, l.settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	values := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range values {
		dest[i] = &values[i]
	}
	record := make([]string, len(header))

	collector := rows.NewCollector(source)
	line := 0
	for result.Next() {
		line++
		if err := result.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scan row %d: %w", domain.ErrDatasetUnavailable, line, err)
		}
		// NULL becomes "" and is rejected as a missing coordinate.
		for i, v := range values {
			record[i] = v.String
		}
		collector.Add(line, cols.Record(record))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %w", domain.ErrDatasetUnavailable, err)
	}

	return collector.Locations(), nil
}

// Export writes locations to a new table in the database at path, using the
// column names from settings so the file can be loaded back with the same
// settings. An existing table of the same name is replaced.
func Export(ctx context.Context, path string, settings domain.DatasetSettings, locations []domain.Location) error {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	table := DefaultTable
	if settings.Sheet != "" {
		table = settings.Sheet
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(table)); err != nil {
		return fmt.Errorf("drop table: %w", err)
	}

	create := fmt.Sprintf("CREATE TABLE %s (%s TEXT NOT NULL, %s TEXT NOT NULL, %s REAL NOT NULL, %s REAL NOT NULL)",
		quoteIdent(table),
		quoteIdent(settings.NameColumn), quoteIdent(settings.PostcodeColumn),
		quoteIdent(settings.LatitudeColumn), quoteIdent(settings.LongitudeColumn))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	//nolint:gosec // G201: identifiers are quoted; values are bound parameters.
	insert := fmt.Sprintf("INSERT INTO %s VALUES (?, ?, ?, ?)", quoteIdent(table))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locations {
		if _, err := stmt.ExecContext(ctx, loc.Name, loc.Postcode, loc.Latitude, loc.Longitude); err != nil {
			return fmt.Errorf("insert %q: %w", loc.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	logger.Info("Exported %d location(s) to %s#%s", len(locations), path, table)
	return nil
}

// quoteIdent quotes name as a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
