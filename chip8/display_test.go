package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawSpriteCollision(t *testing.T) {
	d := NewDisplay()

	assert.False(t, d.DrawSprite([]byte{0x80}, 10, 10))
	assert.Equal(t, uint8(1), d.Pixel(10, 10))

	assert.True(t, d.DrawSprite([]byte{0x80}, 10, 10))
	assert.Equal(t, uint8(0), d.Pixel(10, 10))
}

func TestDrawSpriteWraparound(t *testing.T) {
	d := NewDisplay()

	assert.False(t, d.DrawSprite([]byte{0xFF}, 63, 31))

	for _, x := range []int{63, 0, 1, 2, 3, 4, 5, 6} {
		assert.Equal(t, uint8(1), d.Pixel(x, 31))
	}
	assert.Equal(t, uint8(0), d.Pixel(7, 31))
	assert.Equal(t, uint8(0), d.Pixel(62, 31))
	assert.Equal(t, uint8(0), d.Pixel(0, 0))
}

func TestDrawSpriteVerticalWrap(t *testing.T) {
	d := NewDisplay()

	d.DrawSprite([]byte{0x80, 0x80, 0x80}, 0, 31)
	assert.Equal(t, uint8(1), d.Pixel(0, 31))
	assert.Equal(t, uint8(1), d.Pixel(0, 0))
	assert.Equal(t, uint8(1), d.Pixel(0, 1))
}

func TestDrawSpriteOriginBeyondScreen(t *testing.T) {
	d := NewDisplay()

	// register values above the screen size wrap as well
	d.DrawSprite([]byte{0xC0}, 64+5, 32+2)
	assert.Equal(t, uint8(1), d.Pixel(5, 2))
	assert.Equal(t, uint8(1), d.Pixel(6, 2))
}

func TestDrawSpritePartialCollision(t *testing.T) {
	d := NewDisplay()

	d.DrawSprite([]byte{0x80}, 1, 0)
	// second sprite covers (0,0) and (1,0); only (1,0) was lit
	assert.True(t, d.DrawSprite([]byte{0xC0}, 0, 0))
	assert.Equal(t, uint8(1), d.Pixel(0, 0))
	assert.Equal(t, uint8(0), d.Pixel(1, 0))
}

func TestDisplayClear(t *testing.T) {
	d := NewDisplay()
	d.DrawSprite([]byte{0xFF, 0xFF}, 0, 0)

	d.Clear()
	assert.Equal(t, make([]uint8, SCREEN_WIDTH*SCREEN_HEIGHT), d.Pixels())
	assert.False(t, d.DrawSprite([]byte{0xFF}, 0, 0))
}

func TestDisplayPixelsRowMajor(t *testing.T) {
	d := NewDisplay()
	d.DrawSprite([]byte{0x80}, 3, 2)

	pixels := d.Pixels()
	assert.Equal(t, uint8(1), pixels[2*SCREEN_WIDTH+3])

	// the copy is detached from the framebuffer
	pixels[0] = 1
	assert.Equal(t, uint8(0), d.Pixel(0, 0))
}
