package geom

import (
	"strconv"
	"strings"
)

// ParseCoordinates parses the text of a KML coordinates element.
// Tuples are "lon,lat[,alt]" separated by any whitespace; altitude is ignored.
// Tuples that are missing a field or do not parse as numbers are skipped.
func ParseCoordinates(text string) []Coordinate {
	var out []Coordinate
	for _, tuple := range strings.Fields(text) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, Coordinate{lon, lat})
	}
	return out
}

// FormatCoordinates writes pts back in KML tuple form ("lon,lat lon,lat").
func FormatCoordinates(pts []Coordinate) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(p.Lon(), 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Lat(), 'f', -1, 64))
	}
	return b.String()
}
