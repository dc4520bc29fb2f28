package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(2, 1)

	r, layer := b.cell(0, 0)
	assert.Equal(t, ' ', r)
	assert.Equal(t, -1, layer)

	b.setPixel(0, 0, 1)
	b.setPixel(1, 3, 2)
	r, layer = b.cell(0, 0)
	assert.Equal(t, rune(0x2800+0x01+0x80), r)
	assert.Equal(t, 2, layer)

	// out of range pixels are dropped
	b.setPixel(-1, 0, 0)
	b.setPixel(4, 0, 0)
	b.setPixel(0, 4, 0)
	r, _ = b.cell(1, 0)
	assert.Equal(t, ' ', r)
}
