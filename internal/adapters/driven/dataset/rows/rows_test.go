package rows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jacobp93/Greggs-Location-app/internal/core/domain"
)

func defaultSettings() domain.DatasetSettings {
	return domain.DefaultAppSettings().Dataset
}

func TestResolve_DefaultColumns(t *testing.T) {
	header := []string{"id", "shopName", "address.postCode", "address.latitude", "address.longitude"}

	cols, err := Resolve(header, defaultSettings())

	require.NoError(t, err)
	assert.Equal(t, Columns{Name: 1, Postcode: 2, Latitude: 3, Longitude: 4}, cols)
}

func TestResolve_IgnoresCaseSpaceAndBOM(t *testing.T) {
	header := []string{"\ufeffSHOPNAME", " address.postcode ", "Address.Latitude", "address.LONGITUDE"}

	cols, err := Resolve(header, defaultSettings())

	require.NoError(t, err)
	assert.Equal(t, Columns{Name: 0, Postcode: 1, Latitude: 2, Longitude: 3}, cols)
}

func TestResolve_FirstDuplicateWins(t *testing.T) {
	header := []string{"shopName", "shopName", "address.postCode", "address.latitude", "address.longitude"}

	cols, err := Resolve(header, defaultSettings())

	require.NoError(t, err)
	assert.Equal(t, 0, cols.Name)
}

func TestResolve_MissingColumns(t *testing.T) {
	_, err := Resolve([]string{"shopName", "address.postCode"}, defaultSettings())

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"address.latitude"`)
	assert.Contains(t, err.Error(), `"address.longitude"`)
}

func TestColumns_Record_ShortRow(t *testing.T) {
	cols := Columns{Name: 0, Postcode: 1, Latitude: 2, Longitude: 5}

	r := cols.Record([]string{" Greggs ", "LS1 1AA", "53.8"})

	assert.Equal(t, Record{Name: "Greggs", Postcode: "LS1 1AA", Latitude: "53.8"}, r)
}

func TestRecord_Location(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		want    domain.Location
		wantErr bool
	}{
		{
			name:   "valid",
			record: Record{Name: "A", Postcode: "AA1 1AA", Latitude: "51.5074", Longitude: "-0.1278"},
			want:   domain.Location{Name: "A", Postcode: "AA1 1AA", Latitude: 51.5074, Longitude: -0.1278},
		},
		{
			name:   "decimal comma",
			record: Record{Name: "B", Latitude: "51,5", Longitude: "-0,12"},
			want:   domain.Location{Name: "B", Latitude: 51.5, Longitude: -0.12},
		},
		{
			name:   "boundary values",
			record: Record{Latitude: "-90", Longitude: "180"},
			want:   domain.Location{Latitude: -90, Longitude: 180},
		},
		{name: "empty latitude", record: Record{Latitude: "", Longitude: "1"}, wantErr: true},
		{name: "text longitude", record: Record{Latitude: "1", Longitude: "west"}, wantErr: true},
		{name: "latitude out of range", record: Record{Latitude: "91", Longitude: "0"}, wantErr: true},
		{name: "longitude out of range", record: Record{Latitude: "0", Longitude: "-180.5"}, wantErr: true},
		{name: "nan", record: Record{Latitude: "NaN", Longitude: "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.record.Location()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	table := [][]string{
		{"shopName", "address.postCode", "address.latitude", "address.longitude"},
		{"A", "AA1 1AA", "51.5074", "-0.1278"},
		{"broken", "XX1 1XX", "", "-0.1"},
		{"", "", "", ""},
		{"B", "BB1 1BB", "51.5174", "-0.1378"},
		{"far away", "ZZ1 1ZZ", "123", "0"},
	}

	locs, err := Parse(context.Background(), "test", table, defaultSettings())

	require.NoError(t, err)
	assert.Equal(t, []domain.Location{
		{Name: "A", Postcode: "AA1 1AA", Latitude: 51.5074, Longitude: -0.1278},
		{Name: "B", Postcode: "BB1 1BB", Latitude: 51.5174, Longitude: -0.1378},
	}, locs)
}

func TestParse_HeaderOnly(t *testing.T) {
	table := [][]string{{"shopName", "address.postCode", "address.latitude", "address.longitude"}}

	locs, err := Parse(context.Background(), "test", table, defaultSettings())

	require.NoError(t, err)
	assert.NotNil(t, locs)
	assert.Empty(t, locs)
}

func TestParse_NoHeader(t *testing.T) {
	_, err := Parse(context.Background(), "test", nil, defaultSettings())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParse_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	table := [][]string{
		{"shopName", "address.postCode", "address.latitude", "address.longitude"},
		{"A", "AA1 1AA", "51.5074", "-0.1278"},
	}

	_, err := Parse(ctx, "test", table, defaultSettings())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollector_CountsSkipped(t *testing.T) {
	c := NewCollector("test")

	c.Add(2, Record{Latitude: "1", Longitude: "1"})
	c.Add(3, Record{Latitude: "x", Longitude: "1"})
	c.Add(4, Record{Latitude: "1", Longitude: ""})

	assert.Equal(t, 2, c.Skipped())
	assert.Len(t, c.Locations(), 1)
}
