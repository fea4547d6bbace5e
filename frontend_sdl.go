package main

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"chip8emu/chip8"
)

type sdlFrontend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	keyMap   map[sdl.Keycode]byte
	closed   bool
}

func newSDLFrontend(title string, scale int) (*sdlFrontend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "initializing SDL video")
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(chip8.SCREEN_WIDTH*scale), int32(chip8.SCREEN_HEIGHT*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "creating window")
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "creating renderer")
	}

	// one logical unit per CHIP-8 pixel
	if err := renderer.SetLogicalSize(chip8.SCREEN_WIDTH, chip8.SCREEN_HEIGHT); err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "setting logical size")
	}

	keyMap := make(map[sdl.Keycode]byte, len(keyLayout)+4)
	for r, key := range keyLayout {
		// SDL keycodes of printable keys are their lower case characters
		keyMap[sdl.Keycode(r)] = key
	}
	keyMap[sdl.K_UP] = 0x2
	keyMap[sdl.K_LEFT] = 0x4
	keyMap[sdl.K_RIGHT] = 0x6
	keyMap[sdl.K_DOWN] = 0x8

	return &sdlFrontend{
		window:   window,
		renderer: renderer,
		keyMap:   keyMap,
	}, nil
}

func (f *sdlFrontend) Closed() bool {
	return f.closed
}

func (f *sdlFrontend) PollInput(keypad *chip8.Keypad) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			f.closed = true

		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_ESCAPE {
				f.closed = true
				continue
			}
			if key, ok := f.keyMap[e.Keysym.Sym]; ok {
				keypad.Set(key, e.Type == sdl.KEYDOWN)
			}
		}
	}
}

func (f *sdlFrontend) Render(display *chip8.Display) {
	pixels := display.Pixels()

	f.renderer.SetDrawColor(colorOff.R, colorOff.G, colorOff.B, colorOff.A)
	f.renderer.Clear()
	f.renderer.SetDrawColor(colorOn.R, colorOn.G, colorOn.B, colorOn.A)

	for y := 0; y < chip8.SCREEN_HEIGHT; y++ {
		for x := 0; x < chip8.SCREEN_WIDTH; x++ {
			if pixels[y*chip8.SCREEN_WIDTH+x] == 1 {
				f.renderer.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: 1, H: 1})
			}
		}
	}
	f.renderer.Present()
}

func (f *sdlFrontend) Close() {
	f.renderer.Destroy()
	f.window.Destroy()
	sdl.Quit()
}
