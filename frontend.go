package main

import (
	"image"
	"image/color"

	"chip8emu/chip8"
)

const SCALING_FACTOR = 10

var (
	colorOff = color.RGBA{0xd1, 0xd4, 0xcd, 255}
	colorOn  = color.RGBA{0x74, 0x8c, 0xab, 255}
)

// frontend presents the framebuffer and feeds host input into the keypad.
type frontend interface {
	Closed() bool
	// PollInput writes the current host key state into the keypad.
	PollInput(keypad *chip8.Keypad)
	Render(display *chip8.Display)
	Close()
}

// frameImage converts the framebuffer into an unscaled image.
func frameImage(display *chip8.Display) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, chip8.SCREEN_WIDTH, chip8.SCREEN_HEIGHT))
	pixels := display.Pixels()

	for y := 0; y < chip8.SCREEN_HEIGHT; y++ {
		for x := 0; x < chip8.SCREEN_WIDTH; x++ {
			if pixels[y*chip8.SCREEN_WIDTH+x] == 1 {
				img.SetRGBA(x, y, colorOn)
			} else {
				img.SetRGBA(x, y, colorOff)
			}
		}
	}
	return img
}
