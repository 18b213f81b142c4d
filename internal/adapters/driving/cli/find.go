package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// invalidPostcodeMessage is shown when the geocoder cannot resolve the input.
const invalidPostcodeMessage = "Invalid postcode."

var (
	findRadius float64
	findJSON   bool
)

var findCmd = &cobra.Command{
	Use:   "find [postcode]",
	Short: "Find the nearest stores to a postcode",
	Long: `Geocodes the postcode and lists up to five stores within the radius,
nearest first. The radius defaults to the configured default (10 miles) and
must be between 1 and 50 miles.`,
	Example: `  greggs-finder find "SW1A 1AA"
  greggs-finder find ne14st -r 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().Float64VarP(&findRadius, "radius", "r", domain.DefaultRadiusMiles, "search radius in miles (1-50)")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(findCmd)
}

// invalidPostcodeOutput is the JSON body for an unresolvable postcode.
type invalidPostcodeOutput struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Postcode string `json:"postcode"`
}

func runFind(cmd *cobra.Command, args []string) error {
	postcode := args[0]

	finder, err := requireFinder(cmd.Context())
	if err != nil {
		return err
	}

	radius := findRadius
	if !cmd.Flags().Changed("radius") {
		if settings, err := currentSettings(); err == nil {
			radius = settings.Search.DefaultRadiusMiles
		}
	}

	// A blank postcode cannot be geocoded either.
	if strings.TrimSpace(postcode) == "" {
		return printInvalidPostcode(cmd, postcode)
	}

	result, err := finder.Find(cmd.Context(), postcode, domain.SearchOptions{RadiusMiles: radius})
	if errors.Is(err, domain.ErrPostcodeNotFound) {
		return printInvalidPostcode(cmd, postcode)
	}
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}

	if findJSON {
		return printJSON(cmd, result)
	}
	printResultTable(cmd, result)
	return nil
}

func printInvalidPostcode(cmd *cobra.Command, postcode string) error {
	if findJSON {
		return printJSON(cmd, invalidPostcodeOutput{
			Status:   "invalid_postcode",
			Message:  invalidPostcodeMessage,
			Postcode: postcode,
		})
	}
	cmd.Println(invalidPostcodeMessage)
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printResultTable(cmd *cobra.Command, result *domain.SearchResult) {
	if result.IsEmpty() {
		cmd.Println(result.Status.Message())
		return
	}

	cmd.Printf("Top %d closest Greggs locations within %g miles:\n\n", domain.MaxResults, result.RadiusMiles)

	rows := make([][]string, 0, len(result.Locations))
	for _, loc := range result.Locations {
		rows = append(rows, []string{loc.Name, loc.Postcode, fmt.Sprintf("%.2f", loc.DistanceMiles)})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Name", "Postcode", "Distance (miles)").
		Rows(rows...).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 2 {
				return cell.Align(lipgloss.Right)
			}
			return cell
		})
	cmd.Println(tbl.Render())
}
