package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/dataset/csvfile"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/dataset/excel"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/dataset/sqlite"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driven"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// NewLoader returns the loader for the file format implied by settings.Path.
// Returns domain.ErrInvalidInput if no path is set and
// domain.ErrUnsupportedFormat for unknown extensions.
func NewLoader(settings domain.DatasetSettings) (driven.LocationLoader, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: no dataset path configured", domain.ErrInvalidInput)
	}

	switch format := domain.DatasetFormatFromPath(settings.Path); format {
	case domain.DatasetFormatExcel:
		return excel.New(settings), nil
	case domain.DatasetFormatCSV:
		return csvfile.New(settings), nil
	case domain.DatasetFormatSQLite:
		return sqlite.New(settings), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, settings.Path)
	}
}

// Load picks a loader for settings and reads the dataset once.
func Load(ctx context.Context, settings domain.DatasetSettings) ([]domain.Location, error) {
	logger.Section("Dataset")
	start := time.Now()

	loader, err := NewLoader(settings)
	if err != nil {
		return nil, err
	}

	locations, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded %d location(s) from %s in %s",
		len(locations), settings.Path, time.Since(start).Round(time.Millisecond))
	return locations, nil
}
