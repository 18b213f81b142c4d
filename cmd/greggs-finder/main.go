// Command greggs-finder finds the Greggs stores nearest to a UK postcode.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/config/file"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/dataset"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/dataset/sqlite"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/geocoder/cached"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/geocoder/opencage"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/storage/memory"
	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/cli"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driving"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/services"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetWiring(&cli.Wiring{
		Settings: openSettings,
		Finder:   buildFinder,
		Export:   exportDataset,
	})

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func openSettings(configDir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("Using config %s", store.Path())
	return services.NewSettingsService(store), nil
}

// buildFinder loads the dataset once and wires the geocoder through an
// in-memory cache shared with the finder for invalidation.
func buildFinder(ctx context.Context, settings *domain.AppSettings) (driving.FinderService, error) {
	if !settings.Dataset.IsConfigured() {
		return nil, fmt.Errorf("%w: no dataset configured (run 'greggs-finder settings dataset <path>')",
			domain.ErrDatasetUnavailable)
	}

	locations, err := dataset.Load(ctx, settings.Dataset)
	if err != nil {
		return nil, err
	}

	cache := memory.NewGeocodeCache()
	geocoder := cached.New(opencage.New(opencage.ConfigFromSettings(settings.Geocoder)), cache)

	return services.NewFinderService(locations, geocoder, cache), nil
}

func exportDataset(ctx context.Context, settings *domain.AppSettings, dst string) (int, error) {
	locations, err := dataset.Load(ctx, settings.Dataset)
	if err != nil {
		return 0, err
	}
	if err := sqlite.Export(ctx, dst, settings.Dataset, locations); err != nil {
		return 0, err
	}
	return len(locations), nil
}
