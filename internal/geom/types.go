package geom

import "github.com/paulmach/orb"

// Coordinate is a KML position stored as [lon, lat]. Altitude is never kept.
type Coordinate = orb.Point

// Ring is an ordered outer-boundary vertex sequence. KML repeats the first
// vertex as the last one and so does a Ring parsed from KML.
type Ring = orb.Ring

// Bounds returns the bounding box of pts, or an empty bound at the origin
// when pts is empty.
func Bounds(pts []Coordinate) orb.Bound {
	if len(pts) == 0 {
		return orb.Bound{}
	}
	bb := orb.Bound{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		bb = bb.Extend(p)
	}
	return bb
}
