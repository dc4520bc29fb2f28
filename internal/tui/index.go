package tui

import (
	"github.com/dhconnelly/rtreego"

	"kmzexport/internal/kml"
)

// rowTolerance gives every row a small square extent in the tree.
const rowTolerance = 1e-9

type indexedRow struct {
	i  int
	pt rtreego.Point
}

// Bounds implements rtreego.Spatial.
func (r *indexedRow) Bounds() rtreego.Rect {
	return r.pt.ToRect(rowTolerance)
}

// rowIndex answers nearest-row queries in lon/lat space.
type rowIndex struct {
	tree *rtreego.Rtree
}

func newRowIndex(rows []kml.Row) *rowIndex {
	objs := make([]rtreego.Spatial, len(rows))
	for i, r := range rows {
		objs[i] = &indexedRow{i: i, pt: rtreego.Point{r.Lon, r.Lat}}
	}
	return &rowIndex{tree: rtreego.NewTree(2, 25, 50, objs...)}
}

// nearest returns the position in the indexed slice of the row closest to
// lon/lat. Rows for which keep returns false are passed over; a nil keep
// accepts every row.
func (ix *rowIndex) nearest(lon, lat float64, keep func(i int) bool) (int, bool) {
	if ix == nil || ix.tree.Size() == 0 {
		return 0, false
	}
	var filters []rtreego.Filter
	if keep != nil {
		filters = append(filters, func(_ []rtreego.Spatial, obj rtreego.Spatial) (bool, bool) {
			return !keep(obj.(*indexedRow).i), false
		})
	}
	hits := ix.tree.NearestNeighbors(1, rtreego.Point{lon, lat}, filters...)
	if len(hits) == 0 || hits[0] == nil {
		return 0, false
	}
	return hits[0].(*indexedRow).i, true
}
