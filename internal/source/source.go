// Package source loads feature rows from any input file the tools accept.
package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kmzexport/internal/export"
	"kmzexport/internal/kml"
)

// Extensions lists the file extensions Load understands, lower case.
var Extensions = []string{".kml", ".kmz", ".csv", ".geojson", ".json"}

// Supported reports whether path has one of Extensions.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads path and converts it into rows.
//
// A .kmz file is always treated as an archive. CSV and GeoJSON files are
// read back as previously exported rows. Anything else goes through
// kml.Load, which still recognizes a KMZ by its content. Errors from the
// kml package are returned unwrapped so callers can test them with
// errors.Is and errors.As.
func Load(path string, opts ...kml.Option) ([]kml.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kmz":
		doc, err := kml.UnwrapKMZ(data)
		if err != nil {
			return nil, err
		}
		return kml.Parse(doc, opts...)
	case ".csv":
		rows, err := export.ReadCSV(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return rows, nil
	case ".geojson", ".json":
		rows, err := export.ReadGeoJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		return rows, nil
	default:
		return kml.Load(data, opts...)
	}
}
