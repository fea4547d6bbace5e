package chip8

const (
	SCREEN_WIDTH  = 64
	SCREEN_HEIGHT = 32
)

// Display is the monochrome framebuffer. Pixels are stored row-major as 0/1
// values at index y*SCREEN_WIDTH+x.
type Display struct {
	pixels [SCREEN_WIDTH * SCREEN_HEIGHT]uint8
}

func NewDisplay() *Display {
	return &Display{}
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = [SCREEN_WIDTH * SCREEN_HEIGHT]uint8{}
}

// DrawSprite XORs the sprite rows onto the screen with its top left corner at
// (x, y). Every pixel wraps around the screen edges individually.
// Returns true if any lit pixel was turned off.
func (d *Display) DrawSprite(rows []byte, x, y int) bool {
	collided := false

	for j, row := range rows {
		py := (y + j) % SCREEN_HEIGHT
		for i := 0; i < 8; i++ {
			if row&(0x80>>i) == 0 {
				continue
			}
			px := (x + i) % SCREEN_WIDTH
			idx := py*SCREEN_WIDTH + px
			if d.pixels[idx] == 1 {
				collided = true
			}
			d.pixels[idx] ^= 1
		}
	}

	return collided
}

// Pixel returns the pixel at (x, y), 0 or 1. Coordinates wrap.
func (d *Display) Pixel(x, y int) uint8 {
	return d.pixels[(y%SCREEN_HEIGHT)*SCREEN_WIDTH+x%SCREEN_WIDTH]
}

// Pixels returns a copy of the whole framebuffer.
func (d *Display) Pixels() []uint8 {
	buf := make([]uint8, len(d.pixels))
	copy(buf, d.pixels[:])
	return buf
}
