package export

import (
	"bufio"
	"io"
	"strings"

	"kmzexport/internal/kml"
)

// WriteTXT writes the same columns as WriteCSV, comma separated, one row per
// line and without any quoting. A name containing a comma therefore shifts
// the columns; consumers that need exact fields read the CSV.
func WriteTXT(w io.Writer, rows []kml.Row) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(header, ",") + "\n"); err != nil {
		return err
	}
	for _, r := range rows {
		line := formatFloat(r.Lat) + "," + formatFloat(r.Lon) + "," + r.Name + "," + string(r.Symbol) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
