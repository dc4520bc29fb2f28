package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"kmzexport/internal/kml"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes rows as RFC 4180 CSV with a Latitude,Longitude,Name,Symbol
// header. Names are written as text and quoted only when they need it.
func WriteCSV(w io.Writer, rows []kml.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{formatFloat(r.Lat), formatFloat(r.Lon), r.Name, string(r.Symbol)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads rows back from a CSV with latitude/longitude columns.
// Column detection: lat|latitude|y and lon|lng|long|longitude|x, plus
// optional name and symbol columns (case-insensitive). Records whose
// coordinates do not parse are skipped. Symbols that are not one of the
// known labels are kept as written.
func ReadCSV(r io.Reader) ([]kml.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("csv: empty file")
	}
	idxLat, idxLon, idxName, idxSym := -1, -1, -1, -1
	for i, h := range recs[0] {
		first := func(idx *int) {
			if *idx == -1 {
				*idx = i
			}
		}
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			first(&idxLat)
		case "lon", "lng", "long", "longitude", "x":
			first(&idxLon)
		case "name", "title":
			first(&idxName)
		case "symbol":
			first(&idxSym)
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return nil, errors.New("csv: latitude/longitude columns not found")
	}
	field := func(rec []string, i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var rows []kml.Row
	for _, rec := range recs[1:] {
		lat, err1 := strconv.ParseFloat(strings.TrimSpace(field(rec, idxLat)), 64)
		lon, err2 := strconv.ParseFloat(strings.TrimSpace(field(rec, idxLon)), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		row := kml.Row{Lat: lat, Lon: lon, Name: field(rec, idxName)}
		if raw := strings.TrimSpace(field(rec, idxSym)); raw != "" {
			if sym, err := kml.ParseSymbol(raw); err == nil {
				row.Symbol = sym
			} else {
				row.Symbol = kml.Symbol(raw)
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv: no valid rows in %d records", len(recs)-1)
	}
	return rows, nil
}
