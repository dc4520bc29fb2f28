package tui

// brailleBuf is a 2x4 micro-pixel grid per terminal cell. Each cell also
// remembers the layer that last drew into it so it can be colored.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	layer [][]int   // per-cell layer, -1 when empty
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	layer := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		layer[i] = make([]int, w)
		for j := range layer[i] {
			layer[i][j] = -1
		}
	}
	return &brailleBuf{w: w, h: h, m: m, layer: layer}
}

// dotBits maps a micro-pixel column and row to its braille dot.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) on layer.
func (b *brailleBuf) setPixel(mx, my, layer int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	b.layer[cy][cx] = layer
}

// cell returns the braille rune and layer at a cell, or ' ' and -1.
func (b *brailleBuf) cell(cx, cy int) (rune, int) {
	mask := b.m[cy][cx]
	if mask == 0 {
		return ' ', -1
	}
	return rune(0x2800 + int(mask)), b.layer[cy][cx]
}
