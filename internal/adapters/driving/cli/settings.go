package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the dataset, geocoder and search defaults.

Settings are stored in config.toml inside the configuration directory.
The OPENCAGE_API_KEY environment variable overrides the stored API key.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetKeyCmd = &cobra.Command{
	Use:   "set-key [api-key]",
	Short: "Store the OpenCage geocoding API key",
	Long: `Store the OpenCage geocoding API key. When no key is given on the
command line it is read from the terminal without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsSetKey,
}

var settingsDatasetCmd = &cobra.Command{
	Use:   "dataset [path]",
	Short: "Set the dataset file",
	Long:  `Set the store dataset file. Supported formats: .xlsx, .xlsm, .csv, .db, .sqlite, .sqlite3.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDataset,
}

var settingsRadiusCmd = &cobra.Command{
	Use:   "radius [miles]",
	Short: "Set the default search radius",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsRadius,
}

var settingsColumnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Set dataset sheet and column names",
	Long: `Set the worksheet (or SQLite table) and the column headers holding the
store name, postcode, latitude and longitude. Only the given flags change.`,
	RunE: runSettingsColumns,
}

func init() {
	settingsColumnsCmd.Flags().String("sheet", "", "worksheet or table name")
	settingsColumnsCmd.Flags().String("name", "", "store name column")
	settingsColumnsCmd.Flags().String("postcode", "", "postcode column")
	settingsColumnsCmd.Flags().String("latitude", "", "latitude column")
	settingsColumnsCmd.Flags().String("longitude", "", "longitude column")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetKeyCmd)
	settingsCmd.AddCommand(settingsDatasetCmd)
	settingsCmd.AddCommand(settingsRadiusCmd)
	settingsCmd.AddCommand(settingsColumnsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Dataset]")
	cmd.Printf("  Path: %s\n", valueOrUnset(settings.Dataset.Path))
	cmd.Printf("  Sheet: %s\n", valueOr(settings.Dataset.Sheet, "(first sheet)"))
	cmd.Printf("  Columns: name=%s postcode=%s latitude=%s longitude=%s\n",
		settings.Dataset.NameColumn, settings.Dataset.PostcodeColumn,
		settings.Dataset.LatitudeColumn, settings.Dataset.LongitudeColumn)
	cmd.Println()

	cmd.Println("[Geocoder]")
	if settings.Geocoder.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Geocoder.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Base URL: %s\n", settings.Geocoder.BaseURL)
	cmd.Printf("  Country: %s\n", valueOr(settings.Geocoder.CountryCode, "(any)"))
	cmd.Printf("  Requests/sec: %g\n", settings.Geocoder.RequestsPerSecond)
	cmd.Printf("  Timeout: %ds\n", settings.Geocoder.TimeoutSeconds)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Default radius: %g miles\n", settings.Search.DefaultRadiusMiles)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Println()

	if err := svc.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'greggs-finder settings dataset' and 'greggs-finder settings set-key' to finish setup.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSetKey(cmd *cobra.Command, args []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		cmd.Print("OpenCage API key: ")
		key = readPassword(cmd.InOrStdin())
		cmd.Println()
	}

	if err := svc.SetGeocoderAPIKey(key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}
	cmd.Printf("API key saved (%s).\n", maskAPIKey(strings.TrimSpace(key)))
	if os.Getenv("OPENCAGE_API_KEY") != "" {
		cmd.Println("Note: OPENCAGE_API_KEY is set and takes precedence.")
	}
	return nil
}

func runSettingsDataset(cmd *cobra.Command, args []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	if err := svc.SetDatasetPath(args[0]); err != nil {
		return fmt.Errorf("failed to set dataset: %w", err)
	}
	cmd.Printf("Dataset set to %s\n", args[0])
	return nil
}

func runSettingsRadius(cmd *cobra.Command, args []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	miles, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return fmt.Errorf("%w: radius must be a number, got %q", domain.ErrInvalidInput, args[0])
	}
	if err := svc.SetDefaultRadius(miles); err != nil {
		return fmt.Errorf("failed to set radius: %w", err)
	}
	cmd.Printf("Default radius set to %g miles\n", miles)
	return nil
}

func runSettingsColumns(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	targets := map[string]*string{
		"sheet":     &settings.Dataset.Sheet,
		"name":      &settings.Dataset.NameColumn,
		"postcode":  &settings.Dataset.PostcodeColumn,
		"latitude":  &settings.Dataset.LatitudeColumn,
		"longitude": &settings.Dataset.LongitudeColumn,
	}

	changed := 0
	for flag, target := range targets {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(flag)
		*target = strings.TrimSpace(value)
		changed++
	}
	if changed == 0 {
		return errors.New("no columns given; see --help")
	}

	if err := svc.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("Updated %d dataset setting(s).\n", changed)
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func valueOrUnset(s string) string {
	return valueOr(s, "(not set)")
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readPassword reads a secret without echo when in is a terminal, and a
// plain line otherwise.
func readPassword(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	return readLine(bufio.NewReader(in))
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
