// Package rows maps tabular records onto domain.Location values.
//
// A dataset has a header row naming its columns. Columns resolves the
// configured column names against that header; Collector validates each
// record and keeps the usable ones in source order.
package rows

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
	"github.com/Jacobp93/Greggs-Location-app/internal/logger"
)

// byteOrderMark is stripped from the first header cell of exported files.
const byteOrderMark = "\ufeff"

// Columns holds the header position of each dataset field.
type Columns struct {
	Name      int
	Postcode  int
	Latitude  int
	Longitude int
}

// Resolve finds the configured columns in header. Matching ignores case and
// surrounding space. Returns domain.ErrInvalidInput naming every missing
// column.
func Resolve(header []string, settings domain.DatasetSettings) (Columns, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, byteOrderMark)
		}
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	var missing []string
	find := func(name string) int {
		pos, ok := positions[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			missing = append(missing, fmt.Sprintf("%q", name))
			return -1
		}
		return pos
	}

	cols := Columns{
		Name:      find(settings.NameColumn),
		Postcode:  find(settings.PostcodeColumn),
		Latitude:  find(settings.LatitudeColumn),
		Longitude: find(settings.LongitudeColumn),
	}
	if len(missing) > 0 {
		return Columns{}, fmt.Errorf("%w: missing column(s) %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return cols, nil
}

// Record picks the mapped fields out of row. Short rows yield empty fields.
func (c Columns) Record(row []string) Record {
	return Record{
		Name:      cell(row, c.Name),
		Postcode:  cell(row, c.Postcode),
		Latitude:  cell(row, c.Latitude),
		Longitude: cell(row, c.Longitude),
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Record is one raw dataset entry.
type Record struct {
	Name      string
	Postcode  string
	Latitude  string
	Longitude string
}

// Location converts r into a domain.Location.
// Returns domain.ErrInvalidInput if a coordinate is missing, non-numeric or
// out of range.
func (r Record) Location() (domain.Location, error) {
	lat, err := ParseCoordinate(r.Latitude)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: latitude %q", domain.ErrInvalidInput, r.Latitude)
	}
	lon, err := ParseCoordinate(r.Longitude)
	if err != nil {
		return domain.Location{}, fmt.Errorf("%w: longitude %q", domain.ErrInvalidInput, r.Longitude)
	}

	loc := domain.Location{
		Name:      r.Name,
		Postcode:  r.Postcode,
		Latitude:  lat,
		Longitude: lon,
	}
	if !loc.Coordinate().IsValid() {
		return domain.Location{}, fmt.Errorf("%w: coordinate %s out of range", domain.ErrInvalidInput, loc.Coordinate())
	}
	return loc, nil
}

// ParseCoordinate parses a decimal degree value. A decimal comma is accepted.
func ParseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("empty coordinate")
	}
	return strconv.ParseFloat(s, 64)
}

// Collector accumulates valid locations and counts the rejected records.
type Collector struct {
	source    string
	locations []domain.Location
	skipped   int
}

// NewCollector creates a collector. source names the dataset in log output.
func NewCollector(source string) *Collector {
	return &Collector{source: source}
}

// Add validates r, read from the given 1-based line, and keeps it if usable.
func (c *Collector) Add(line int, r Record) {
	loc, err := r.Location()
	if err != nil {
		c.skipped++
		logger.Debug("%s line %d skipped: %v", c.source, line, err)
		return
	}
	c.locations = append(c.locations, loc)
}

// Skipped returns the number of rejected records.
func (c *Collector) Skipped() int {
	return c.skipped
}

// Locations returns the kept locations in the order they were added.
// The result is never nil.
func (c *Collector) Locations() []domain.Location {
	if c.skipped > 0 {
		logger.Warn("%s: skipped %d record(s) with unusable coordinates", c.source, c.skipped)
	}
	logger.Info("%s: loaded %d location(s)", c.source, len(c.locations))
	if c.locations == nil {
		return []domain.Location{}
	}
	return c.locations
}

// Parse maps a whole table whose first row is the header.
// An empty table has no header and fails with domain.ErrInvalidInput.
func Parse(ctx context.Context, source string, table [][]string, settings domain.DatasetSettings) ([]domain.Location, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", domain.ErrInvalidInput, source)
	}

	cols, err := Resolve(table[0], settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	collector := NewCollector(source)
	for i, row := range table[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isBlank(row) {
			continue
		}
		collector.Add(i+2, cols.Record(row))
	}
	return collector.Locations(), nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
