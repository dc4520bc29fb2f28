package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"kmzexport/internal/kml"
)

var attrHeaders = []string{"Latitude", "Longitude", "Name", "Symbol"}

// refreshAttrsFromCurrent rebuilds the rows table from the loaded dataset.
func (m *Model) refreshAttrsFromCurrent() {
	if len(m.rows) == 0 {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showAttrs = false
		m.status = "no rows for current dataset"
		return
	}
	cols, rows := buildAttributes(m.rows)
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// buildAttributes lays rows out as table cells, sizing each column to its
// widest value.
func buildAttributes(data []kml.Row) ([]table.Column, []table.Row) {
	const maxColW = 32
	widths := make([]int, len(attrHeaders))
	for i, h := range attrHeaders {
		widths[i] = len(h)
	}
	rows := make([]table.Row, 0, len(data))
	numW := 1
	for i, r := range data {
		cells := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(r.Lat, 'f', -1, 64),
			strconv.FormatFloat(r.Lon, 'f', -1, 64),
			r.Name,
			string(r.Symbol),
		}
		numW = max(numW, len(cells[0]))
		for j, c := range cells[1:] {
			widths[j] = max(widths[j], lipgloss.Width(c))
		}
		rows = append(rows, table.Row(cells))
	}
	cols := make([]table.Column, 0, len(attrHeaders)+1)
	cols = append(cols, table.Column{Title: "#", Width: max(numW, 1) + 1})
	for i, h := range attrHeaders {
		cols = append(cols, table.Column{Title: h, Width: min(widths[i]+2, maxColW)})
	}
	return cols, rows
}
