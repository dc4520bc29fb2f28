// Package export serializes feature rows into the delivered artifacts: a
// CSV table, a plain text mirror of it, an optional GeoJSON layer and an
// optional zip bundle of all of them.
package export

// Default artifact file names.
const (
	CSVName     = "Preliminary AGM locations.csv"
	TXTName     = "Preliminary AGM locations.txt"
	GeoJSONName = "Preliminary AGM locations.geojson"
	BundleName  = "Preliminary AGM locations.zip"
)

// header is the column order shared by every tabular artifact.
var header = []string{"Latitude", "Longitude", "Name", "Symbol"}
