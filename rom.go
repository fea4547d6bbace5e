package main

import (
	"os"

	"github.com/pkg/errors"

	"chip8emu/chip8"
)

// LoadRomFile loads the rom at path into the interpreter. A missing file is
// reported as chip8.ErrSourceNotFound.
func LoadRomFile(c *chip8.Chip8, romFile string) error {
	f, err := os.Open(romFile)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(chip8.ErrSourceNotFound, "opening %s", romFile)
		}
		return errors.Wrapf(err, "opening %s", romFile)
	}
	defer f.Close()

	return errors.Wrapf(c.LoadProgramFrom(f), "loading %s", romFile)
}
