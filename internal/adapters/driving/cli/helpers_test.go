package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driven/storage/memory"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/ports/driving"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/services"
)

// mockFinderService implements driving.FinderService for testing.
type mockFinderService struct {
	result *domain.SearchResult
	err    error
	size   int

	calls        int
	gotPostcode  string
	gotOpts      domain.SearchOptions
	invalidated  []string
	clearedCount int
}

func (m *mockFinderService) Find(
	_ context.Context,
	postcode string,
	opts domain.SearchOptions,
) (*domain.SearchResult, error) {
	m.calls++
	m.gotPostcode = postcode
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.SearchResult{
		Postcode:    postcode,
		RadiusMiles: opts.RadiusMiles,
		Status:      domain.StatusNoMatches,
		Locations:   []domain.NearbyLocation{},
	}, nil
}

func (m *mockFinderService) DatasetSize() int { return m.size }

func (m *mockFinderService) InvalidateGeocode(postcode string) {
	m.invalidated = append(m.invalidated, postcode)
}

func (m *mockFinderService) ClearGeocodes() { m.clearedCount++ }

var _ driving.FinderService = (*mockFinderService)(nil)

func foundResult() *domain.SearchResult {
	return &domain.SearchResult{
		ID:          "search-1",
		Postcode:    "NE1 4ST",
		Origin:      domain.Coordinate{Latitude: 54.9733, Longitude: -1.6140},
		RadiusMiles: 10,
		Status:      domain.StatusFound,
		Locations: []domain.NearbyLocation{
			{Name: "Grainger Street", Postcode: "NE1 5JQ", DistanceMiles: 0.2149},
			{Name: "Eldon Square", Postcode: "NE1 7XZ", DistanceMiles: 0.8138},
		},
	}
}

// setupTestServices installs an in-memory settings service and the given
// finder, restoring the previous package state when the test ends.
func setupTestServices(t *testing.T, finder driving.FinderService) *services.SettingsService {
	t.Helper()
	t.Setenv(services.EnvGeocoderAPIKey, "")

	settings := services.NewSettingsService(memory.NewConfigStore())

	prevSettings, prevFinder, prevWiring := settingsService, finderService, wiring
	settingsService = settings
	finderService = finder
	wiring = nil

	t.Cleanup(func() {
		settingsService = prevSettings
		finderService = prevFinder
		wiring = prevWiring
	})

	return settings
}

// executeCommand runs the root command with args and returns everything it
// printed.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandWithInput(t, "", args...)
}

// executeCommandWithInput is executeCommand with stdin set to input.
func executeCommandWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(bytes.NewBufferString(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// resetFlags restores flag defaults between runs; cobra keeps parsed values
// on the package-level commands.
func resetFlags() {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

// findCommand returns the subcommand at path, or nil.
func findCommand(path ...string) *cobra.Command {
	cmd, _, err := rootCmd.Find(path)
	if err != nil {
		return nil
	}
	return cmd
}
