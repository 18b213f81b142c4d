// Package results renders the nearest-location table for the TUI.
package results

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Jacobp93/Greggs-Location-app/internal/adapters/driving/tui/styles"
	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

// Column headings.
var headers = []string{"Name", "Postcode", "Distance (miles)"}

// Table displays the outcome of the latest search.
type Table struct {
	styles *styles.Styles
	result *domain.SearchResult
	width  int
}

// NewTable creates an empty results table.
func NewTable(s *styles.Styles) *Table {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Table{styles: s, width: 80}
}

// SetResult replaces the displayed search result.
func (t *Table) SetResult(result *domain.SearchResult) {
	t.result = result
}

// Result returns the displayed search result, or nil.
func (t *Table) Result() *domain.SearchResult {
	return t.result
}

// Clear removes the displayed result.
func (t *Table) Clear() {
	t.result = nil
}

// Count returns the number of displayed locations.
func (t *Table) Count() int {
	if t.result == nil {
		return 0
	}
	return len(t.result.Locations)
}

// SetWidth sets the available width.
func (t *Table) SetWidth(width int) {
	t.width = width
}

// View renders the heading and table, or the status message when the
// search found nothing.
func (t *Table) View() string {
	if t.result == nil {
		return t.styles.Muted.Render("Enter a postcode and press enter to search.")
	}
	if t.result.IsEmpty() {
		return t.styles.Warning.Render(t.result.Status.Message())
	}

	heading := t.styles.Subtitle.Render(fmt.Sprintf(
		"Top %d closest Greggs locations within %g miles:",
		domain.MaxResults, t.result.RadiusMiles,
	))

	rows := make([][]string, 0, len(t.result.Locations))
	for _, loc := range t.result.Locations {
		rows = append(rows, []string{
			loc.Name,
			loc.Postcode,
			fmt.Sprintf("%.2f", loc.DistanceMiles),
		})
	}

	header := t.styles.TableHeader
	cell := t.styles.TableCell
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.styles.Theme().Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == table.HeaderRow {
				s = header
			}
			if col == len(headers)-1 {
				return s.Align(lipgloss.Right)
			}
			return s
		})

	return lipgloss.JoinVertical(lipgloss.Left, heading, "", tbl.Render())
}
