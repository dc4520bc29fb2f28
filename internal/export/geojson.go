package export

import (
	"errors"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"kmzexport/internal/kml"
)

// WriteGeoJSON writes rows as a FeatureCollection of Points carrying name
// and symbol properties.
func WriteGeoJSON(w io.Writer, rows []kml.Row) error {
	fc := geojson.NewFeatureCollection()
	for _, r := range rows {
		f := geojson.NewFeature(orb.Point{r.Lon, r.Lat})
		f.Properties["name"] = r.Name
		f.Properties["symbol"] = string(r.Symbol)
		fc.Append(f)
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// ReadGeoJSON reads rows from a FeatureCollection. Point features map one to
// one; MultiPoint features contribute every point. Other geometries are
// skipped.
func ReadGeoJSON(r io.Reader) ([]kml.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}
	var rows []kml.Row
	for _, f := range fc.Features {
		name := f.Properties.MustString("name", "")
		sym := kml.Symbol(f.Properties.MustString("symbol", ""))
		add := func(p orb.Point) {
			rows = append(rows, kml.Row{Lat: p.Lat(), Lon: p.Lon(), Name: name, Symbol: sym})
		}
		switch g := f.Geometry.(type) {
		case orb.Point:
			add(g)
		case orb.MultiPoint:
			for _, p := range g {
				add(p)
			}
		}
	}
	if len(rows) == 0 {
		return nil, errors.New("geojson: no points found")
	}
	return rows, nil
}
