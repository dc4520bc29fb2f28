package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kmzexport/internal/kml"
)

func TestRowIndexNearest(t *testing.T) {
	rows := []kml.Row{
		{Lat: 0, Lon: 0, Name: "origin"},
		{Lat: 10, Lon: 10, Name: "ne"},
		{Lat: -10, Lon: 10, Name: "se"},
		{Lat: 42.35, Lon: -71.05, Name: "boston"},
	}
	ix := newRowIndex(rows)

	tests := []struct {
		lon, lat float64
		want     string
	}{
		{0.1, -0.1, "origin"},
		{9, 11, "ne"},
		{8, -7, "se"},
		{-70, 40, "boston"},
	}
	for _, tt := range tests {
		i, ok := ix.nearest(tt.lon, tt.lat, nil)
		if assert.True(t, ok) {
			assert.Equal(t, tt.want, rows[i].Name)
		}
	}
}

func TestRowIndexEmpty(t *testing.T) {
	_, ok := newRowIndex(nil).nearest(1, 2, nil)
	assert.False(t, ok)

	var ix *rowIndex
	_, ok = ix.nearest(1, 2, nil)
	assert.False(t, ok)
}

func TestRowIndexMany(t *testing.T) {
	// enough rows to force the tree to split nodes
	var rows []kml.Row
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			rows = append(rows, kml.Row{Lon: float64(x), Lat: float64(y)})
		}
	}
	ix := newRowIndex(rows)
	i, ok := ix.nearest(13.2, 6.9, nil)
	assert.True(t, ok)
	assert.Equal(t, 13.0, rows[i].Lon)
	assert.Equal(t, 7.0, rows[i].Lat)
}

func TestRowIndexKeep(t *testing.T) {
	rows := []kml.Row{
		{Lat: 0, Lon: 0, Symbol: kml.RedFlag},
		{Lat: 5, Lon: 5, Symbol: kml.YellowDot},
		{Lat: 9, Lon: 9, Symbol: kml.YellowDot},
	}
	ix := newRowIndex(rows)
	noFlags := func(i int) bool { return rows[i].Symbol != kml.RedFlag }

	i, ok := ix.nearest(0, 0, noFlags)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = ix.nearest(0, 0, func(int) bool { return false })
	assert.False(t, ok)
}
