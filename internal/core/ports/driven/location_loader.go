package driven

import (
	"context"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// LocationLoader reads the store dataset.
type LocationLoader interface {
	// Load returns every usable location in source order.
	// Records with missing, non-numeric or out-of-range coordinates are
	// skipped. Returns domain.ErrDatasetUnavailable if the source cannot
	// be opened.
	Load(ctx context.Context) ([]domain.Location, error)
}
