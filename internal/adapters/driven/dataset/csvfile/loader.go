// Package csvfile loads store locations from a CSV file with a header row.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/dataset/rows"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.LocationLoader = (*Loader)(nil)

// Loader streams a CSV file record by record.
type Loader struct {
	settings domain.DatasetSettings
}

// New creates a CSV loader.
func New(settings domain.DatasetSettings) *Loader {
	return &Loader{settings: settings}
}

// Load reads every record of the file.
func (l *Loader) Load(ctx context.Context) ([]domain.Location, error) {
	f, err := os.Open(l.settings.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}
	defer f.Close()

	return Read(ctx, filepath.Base(l.settings.Path), f, l.settings)
}

// Read parses CSV from r. source names the input in errors and logs.
func Read(ctx context.Context, source string, r io.Reader, settings domain.DatasetSettings) ([]domain.Location, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s has no header row", domain.ErrInvalidInput, source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, source, err)
	}

	cols, err := rows.Resolve(header, settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	collector := rows.NewCollector(source)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, source, err)
		}

		line, _ := cr.FieldPos(0)
		collector.Add(line, cols.Record(record))
	}

	return collector.Locations(), nil
}
