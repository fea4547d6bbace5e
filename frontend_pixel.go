package main

import (
	"image"

	"github.com/gopxl/pixel/v2"
	"github.com/gopxl/pixel/v2/backends/opengl"
	"golang.org/x/image/draw"

	"chip8emu/chip8"
)

var pixelKeys = map[rune]pixel.Button{
	'1': pixel.Key1, '2': pixel.Key2, '3': pixel.Key3, '4': pixel.Key4,
	'q': pixel.KeyQ, 'w': pixel.KeyW, 'e': pixel.KeyE, 'r': pixel.KeyR,
	'a': pixel.KeyA, 's': pixel.KeyS, 'd': pixel.KeyD, 'f': pixel.KeyF,
	'z': pixel.KeyZ, 'x': pixel.KeyX, 'c': pixel.KeyC, 'v': pixel.KeyV,
}

// arrow keys double as the 2/4/6/8 direction pad most games use
var pixelArrowKeys = map[pixel.Button]byte{
	pixel.KeyUp:    0x2,
	pixel.KeyLeft:  0x4,
	pixel.KeyRight: 0x6,
	pixel.KeyDown:  0x8,
}

type pixelFrontend struct {
	window *opengl.Window
	scale  int
	keyMap map[pixel.Button]byte
}

// newPixelFrontend opens an OpenGL window. It must be called from the
// function passed to opengl.Run.
func newPixelFrontend(title string, scale int) (*pixelFrontend, error) {
	cfg := opengl.WindowConfig{
		Title:     title,
		Bounds:    pixel.R(0, 0, float64(chip8.SCREEN_WIDTH*scale), float64(chip8.SCREEN_HEIGHT*scale)),
		VSync:     false,
		Resizable: false,
	}
	win, err := opengl.NewWindow(cfg)
	if err != nil {
		return nil, err
	}

	keyMap := make(map[pixel.Button]byte, len(keyLayout)+len(pixelArrowKeys))
	for r, key := range keyLayout {
		keyMap[pixelKeys[r]] = key
	}
	for button, key := range pixelArrowKeys {
		keyMap[button] = key
	}

	win.Clear(colorOff)
	win.SetMatrix(pixel.IM.Scaled(pixel.ZV, 1))

	return &pixelFrontend{
		window: win,
		scale:  scale,
		keyMap: keyMap,
	}, nil
}

func (f *pixelFrontend) Closed() bool {
	return f.window.Closed()
}

func (f *pixelFrontend) PollInput(keypad *chip8.Keypad) {
	f.window.Update()

	if f.window.Pressed(pixel.KeyEscape) {
		f.window.SetClosed(true)
	}

	var state keyState
	for button, key := range f.keyMap {
		if f.window.Pressed(button) {
			state.press(key)
		}
	}
	state.apply(keypad)
}

func (f *pixelFrontend) Render(display *chip8.Display) {
	src := frameImage(display)
	dst := image.NewRGBA(image.Rect(0, 0, chip8.SCREEN_WIDTH*f.scale, chip8.SCREEN_HEIGHT*f.scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	pic := pixel.PictureDataFromImage(dst)
	sprite := pixel.NewSprite(pic, pic.Bounds())

	f.window.Clear(colorOff)
	sprite.Draw(f.window, pixel.IM.Moved(f.window.Bounds().Center()))
}

func (f *pixelFrontend) Close() {
	f.window.Destroy()
}
