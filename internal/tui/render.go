package tui

import (
	"strings"

	"kmzexport/internal/kml"
)

// cellToLonLat converts a map cell coordinate back to lon/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.hasExtent() || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.Min[0] + nx*(m.bbox.Max[0]-m.bbox.Min[0])
	lat := m.bbox.Min[1] + ny*(m.bbox.Max[1]-m.bbox.Min[1])
	return lon, lat, true
}

func (m Model) hasExtent() bool {
	return len(m.rows) > 0 && m.bbox.Max[0] > m.bbox.Min[0] && m.bbox.Max[1] > m.bbox.Min[1]
}

// layerOf returns the braille layer used for a symbol.
func layerOf(s kml.Symbol) int {
	for i, sym := range kml.Symbols {
		if sym == s {
			return i
		}
	}
	return len(kml.Symbols)
}

// renderMap draws every visible row as a braille dot colored by symbol.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	if m.hasExtent() {
		for _, r := range m.rows {
			if m.hidden[r.Symbol] {
				continue
			}
			mx, my, ok := m.screenXYMicro(r.Lon, r.Lat, w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my, layerOf(r.Symbol))
		}
	}

	cells := make([][]string, h)
	for y := range cells {
		cells[y] = make([]string, w)
		for x := range cells[y] {
			ch, layer := br.cell(x, y)
			switch {
			case layer < 0:
				cells[y][x] = " "
			case layer < len(kml.Symbols):
				cells[y][x] = symbolStyle(kml.Symbols[layer]).Render(string(ch))
			default:
				cells[y][x] = string(ch)
			}
		}
	}

	// Hover highlight: draw an orange circle at the hovered row
	if m.hovering {
		cx, cy := m.hoverMicX/2, m.hoverMicY/4
		if cy >= 0 && cy < h && cx >= 0 && cx < w {
			cells[cy][cx] = hoverStyle.Render("◯")
		}
	}

	lines := make([]string, h)
	for y, row := range cells {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !m.hasExtent() {
		return 0, 0, false
	}
	nx := (lon - m.bbox.Min[0]) / (m.bbox.Max[0] - m.bbox.Min[0])
	ny := (lat - m.bbox.Min[1]) / (m.bbox.Max[1] - m.bbox.Min[1])
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

func (m Model) visible(i int) bool { return !m.hidden[m.rows[i].Symbol] }

// inspectNearest finds the row closest to the viewport center.
func (m Model) inspectNearest() (kml.Row, bool) {
	lo := m.layout()
	w, h := lo.mapWidth, lo.mapHeight
	lon, lat, ok := m.cellToLonLat(w/2, h/2, w, h)
	if !ok {
		return kml.Row{}, false
	}
	i, ok := m.index.nearest(lon, lat, m.visible)
	if !ok {
		return kml.Row{}, false
	}
	return m.rows[i], true
}
