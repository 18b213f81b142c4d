// Package cli provides the command-line interface for the finder.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driving"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services used by the commands. Built lazily through wiring, or set
// directly by tests.
var (
	settingsService driving.SettingsService
	finderService   driving.FinderService
)

// Persistent flag values.
var (
	configDir   string
	datasetPath string
	verbose     bool
)

// Wiring builds the services the commands need. Each function is called at
// most once, and only by commands that need its result, so that settings can
// be edited before a dataset or API key exists.
type Wiring struct {
	// Settings opens the settings store in configDir ("" for the default).
	Settings func(configDir string) (driving.SettingsService, error)

	// Finder loads the dataset and builds the finder service.
	Finder func(ctx context.Context, settings *domain.AppSettings) (driving.FinderService, error)

	// Export copies the configured dataset into a SQLite database at dst
	// and returns the number of locations written.
	Export func(ctx context.Context, settings *domain.AppSettings, dst string) (int, error)
}

var wiring *Wiring

var rootCmd = &cobra.Command{
	Use:   "greggs-finder",
	Short: "Find the nearest Greggs to a UK postcode",
	Long: `greggs-finder geocodes a UK postcode and lists the five nearest Greggs
stores within a radius, measured as great-circle distance in miles.

Configure it once:
  greggs-finder settings dataset ./greggs.xlsx
  greggs-finder settings set-key

Then search:
  greggs-finder find "NE1 4ST" --radius 5`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.greggs-finder)")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "dataset file to load, overriding settings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetWiring installs the service constructors used by the commands.
func SetWiring(w *Wiring) {
	wiring = w
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// requireSettings returns the settings service, building it on first use.
func requireSettings() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	if wiring == nil || wiring.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	svc, err := wiring.Settings(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening settings: %w", err)
	}
	settingsService = svc
	return svc, nil
}

// currentSettings returns the stored settings with command-line overrides
// applied.
func currentSettings() (*domain.AppSettings, error) {
	svc, err := requireSettings()
	if err != nil {
		return nil, err
	}
	settings, err := svc.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if datasetPath != "" {
		settings.Dataset.Path = datasetPath
	}
	return settings, nil
}

// requireFinder returns the finder service, loading the dataset on first use.
func requireFinder(ctx context.Context) (driving.FinderService, error) {
	if finderService != nil {
		return finderService, nil
	}
	if wiring == nil || wiring.Finder == nil {
		return nil, errors.New("finder service not configured")
	}
	settings, err := currentSettings()
	if err != nil {
		return nil, err
	}
	svc, err := wiring.Finder(ctx, settings)
	if err != nil {
		return nil, err
	}
	finderService = svc
	return svc, nil
}
