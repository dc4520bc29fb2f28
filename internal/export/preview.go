package export

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"kmzexport/internal/kml"
)

// WritePreview renders rows as a bordered table for a terminal.
func WritePreview(w io.Writer, rows []kml.Row) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(header...)
	for _, r := range rows {
		t.Row(formatFloat(r.Lat), formatFloat(r.Lon), r.Name, string(r.Symbol))
	}
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
