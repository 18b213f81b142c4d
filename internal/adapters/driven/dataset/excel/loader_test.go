package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

var header = []any{"shopName", "address.postCode", "address.latitude", "address.longitude"}

// writeWorkbook saves a workbook with one sheet per entry in sheets.
func writeWorkbook(t *testing.T, sheets map[string][][]any, order ...string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			row := row
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "Greggs_Locations.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func settingsFor(path string) domain.DatasetSettings {
	s := domain.DefaultAppSettings().Dataset
	s.Path = path
	return s
}

func TestLoader_Load_FirstSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"Stores": {
			header,
			{"Greggs Strand", "WC2N 5DU", 51.5074, -0.1278},
			{"Greggs Holborn", "WC1V 6PS", 51.5174, -0.1378},
			{"No coords", "XX1 1XX", "", ""},
		},
		"Other": {{"ignored"}},
	}, "Stores", "Other")

	locs, err := New(settingsFor(path)).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Location{
		{Name: "Greggs Strand", Postcode: "WC2N 5DU", Latitude: 51.5074, Longitude: -0.1278},
		{Name: "Greggs Holborn", Postcode: "WC1V 6PS", Latitude: 51.5174, Longitude: -0.1378},
	}, locs)
}

func TestLoader_Load_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"Summary": {{"nothing here"}},
		"Stores": {
			header,
			{"Greggs Leeds", "LS1 1AA", 53.7997, -1.5492},
		},
	}, "Summary", "Stores")
	settings := settingsFor(path)
	settings.Sheet = "Stores"

	locs, err := New(settings).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "Greggs Leeds", locs[0].Name)
}

func TestLoader_Load_FullPrecision(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"Stores": {header, {"P", "P1", 51.123456789, -0.987654321}},
	}, "Stores")

	locs, err := New(settingsFor(path)).Load(context.Background())

	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.InDelta(t, 51.123456789, locs[0].Latitude, 1e-12)
	assert.InDelta(t, -0.987654321, locs[0].Longitude, 1e-12)
}

func TestLoader_Load_MissingSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{"Stores": {header}}, "Stores")
	settings := settingsFor(path)
	settings.Sheet = "Nope"

	_, err := New(settings).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoader_Load_MissingColumn(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"Stores": {{"shopName", "address.postCode", "lat", "lon"}},
	}, "Stores")

	_, err := New(settingsFor(path)).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := New(settingsFor(filepath.Join(t.TempDir(), "missing.xlsx"))).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}
