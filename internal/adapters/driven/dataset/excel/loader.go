// Package excel loads store locations from an Excel workbook.
package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/dataset/rows"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driven"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.LocationLoader = (*Loader)(nil)

// Loader reads one worksheet of a workbook.
type Loader struct {
	settings domain.DatasetSettings
}

// New creates a workbook loader. An empty settings.Sheet selects the first sheet.
func New(settings domain.DatasetSettings) *Loader {
	return &Loader{settings: settings}
}

// Load reads every row of the worksheet.
func (l *Loader) Load(ctx context.Context) ([]domain.Location, error) {
	if _, err := os.Stat(l.settings.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatasetUnavailable, err)
	}

	f, err := excelize.OpenFile(l.settings.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrDatasetUnavailable, l.settings.Path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("close workbook %s: %v", l.settings.Path, err)
		}
	}()

	sheet, err := l.sheet(f)
	if err != nil {
		return nil, err
	}
	logger.Debug("Reading sheet %q of %s", sheet, l.settings.Path)

	// Raw values keep full coordinate precision regardless of cell number format.
	table, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %w", domain.ErrDatasetUnavailable, sheet, err)
	}

	source := filepath.Base(l.settings.Path) + "#" + sheet
	return rows.Parse(ctx, source, table, l.settings)
}

func (l *Loader) sheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: %s has no worksheets", domain.ErrInvalidInput, l.settings.Path)
	}
	if l.settings.Sheet == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == l.settings.Sheet {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: sheet %q not found in %s", domain.ErrNotFound, l.settings.Sheet, l.settings.Path)
}
