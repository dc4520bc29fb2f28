package kml

import (
	"strings"

	"kmzexport/internal/geom"
)

// placemark is the geometry and metadata recovered from one Placemark.
type placemark struct {
	name        string
	description string
	styleURL    string
	point       *geom.Coordinate // [lon, lat]
	polygon     geom.Ring
	hasPolygon  bool
}

func extractPlacemark(pm *node) placemark {
	p := placemark{name: extractName(pm)}
	p.description, _ = pm.childText("description")
	p.styleURL, _ = pm.childText("styleUrl")
	p.point = extractPoint(pm)
	p.polygon, p.hasPolygon = extractPolygon(pm)
	return p
}

// extractPoint returns the first coordinate of the first Point found at any
// depth below pm.
func extractPoint(pm *node) *geom.Coordinate {
	el := pm.find("Point", "coordinates")
	if el == nil {
		return nil
	}
	coords := geom.ParseCoordinates(el.text)
	if len(coords) == 0 {
		return nil
	}
	c := coords[0]
	return &c
}

// extractPolygon returns the outer ring of the first Polygon found at any
// depth below pm, closing vertex included. A ring without a single valid
// tuple does not count as a polygon, so such a Placemark yields no row rather
// than one placed at (0, 0) by averaging an empty vertex list.
func extractPolygon(pm *node) (geom.Ring, bool) {
	el := pm.find("Polygon", "outerBoundaryIs", "LinearRing", "coordinates")
	if el == nil {
		return nil, false
	}
	ring := geom.Ring(geom.ParseCoordinates(el.text))
	return ring, len(ring) > 0
}

// extractName prefers a direct name child and falls back to the first name
// element anywhere below pm.
func extractName(pm *node) string {
	if name, _ := pm.childText("name"); name != "" {
		return name
	}
	if el := pm.find("name"); el != nil {
		return strings.TrimSpace(el.text)
	}
	return ""
}
