package geom

import "github.com/paulmach/orb"

// vertexRounding keeps ten decimal digits when comparing vertices.
const vertexRounding = 1e10

// IsTriangle reports whether ring has exactly three distinct vertices once
// each component is rounded to ten decimals. The repeated closing vertex of a
// KML ring collapses into the first one.
//
// This is a structural test: a degenerate ring with more edges but only three
// distinct rounded vertices also counts as a triangle.
func IsTriangle(ring Ring) bool {
	seen := make(map[Coordinate]struct{}, 4)
	for _, p := range ring {
		seen[orb.Round(p, vertexRounding).(orb.Point)] = struct{}{}
		if len(seen) > 3 {
			return false
		}
	}
	return len(seen) == 3
}

// Centroid returns the arithmetic mean of the ring's vertices, closing vertex
// included. It is not area weighted. An empty ring yields (0, 0).
func Centroid(ring Ring) Coordinate {
	if len(ring) == 0 {
		return Coordinate{}
	}
	var sumLon, sumLat float64
	for _, p := range ring {
		sumLon += p[0]
		sumLat += p[1]
	}
	n := float64(len(ring))
	return Coordinate{sumLon / n, sumLat / n}
}
