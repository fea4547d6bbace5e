package chip8

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// newTestChip returns an interpreter with the font loaded and the given
// instruction words loaded at the program start.
func newTestChip(t *testing.T, program ...uint16) *Chip8 {
	t.Helper()

	rom := make([]byte, 0, len(program)*2)
	for _, op := range program {
		rom = append(rom, byte(op>>8), byte(op))
	}

	c := NewChip8(nil, nil, WithRand(rand.New(rand.NewSource(1))))
	c.LoadFont()
	assert.NoError(t, c.LoadProgram(rom))
	return c
}

func TestLoadProgram(t *testing.T) {
	c := newTestChip(t, 0x1234, 0xABCD)

	mem := c.Memory()
	assert.Equal(t, []byte{0x12, 0x34, 0xAB, 0xCD}, mem[0x200:0x204])
	assert.Equal(t, RamGameStart, c.PC())
}

func TestLoadProgramCapacityExceeded(t *testing.T) {
	c := NewChip8(nil, nil)
	before := c.Memory()

	rom := bytes.Repeat([]byte{0xFF}, MemorySize-int(RamGameStart)+1)
	err := c.LoadProgram(rom)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, before, c.Memory())
}

func TestLoadProgramFullSize(t *testing.T) {
	c := NewChip8(nil, nil)

	rom := bytes.Repeat([]byte{0xAA}, MemorySize-int(RamGameStart))
	assert.NoError(t, c.LoadProgram(rom))
	assert.Equal(t, byte(0xAA), c.Memory()[RamEnd])
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestLoadProgramFrom(t *testing.T) {
	c := NewChip8(nil, nil)

	assert.NoError(t, c.LoadProgramFrom(bytes.NewReader([]byte{0x00, 0xE0})))
	assert.Equal(t, byte(0xE0), c.Memory()[0x201])

	err := c.LoadProgramFrom(nil)
	assert.True(t, errors.Is(err, ErrSourceNotFound))

	err = c.LoadProgramFrom(failingReader{})
	assert.True(t, errors.Is(err, ErrSourceNotFound))

	err = c.LoadProgramFrom(bytes.NewReader(make([]byte, MemorySize)))
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
}

func TestLoadFont(t *testing.T) {
	c := NewChip8(nil, nil)
	c.LoadFont()

	mem := c.Memory()
	assert.Equal(t, defaultSprites, mem[RamFontStart:RamFontStart+80])
	assert.Equal(t, byte(0), mem[RamFontStart+80])
}

func TestReset(t *testing.T) {
	c := newTestChip(t, 0x6A42, 0xA123, 0xD005)
	assert.NoError(t, c.ExecuteCPU(3))

	c.Reset()

	assert.Equal(t, uint8(0), c.V(0xA))
	assert.Equal(t, uint16(0), c.I())
	assert.Equal(t, RamGameStart, c.PC())
	assert.Equal(t, byte(0), c.Memory()[0x200])
	assert.Equal(t, byte(0xF0), c.Memory()[RamFontStart])
	assert.Equal(t, make([]uint8, SCREEN_WIDTH*SCREEN_HEIGHT), c.Display().Pixels())
}

func TestStepIllegalOpcode(t *testing.T) {
	c := newTestChip(t, 0x0123)

	err := c.Step()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalOpcode))

	var execErr *ExecError
	assert.True(t, errors.As(err, &execErr))
	assert.Equal(t, uint16(0x200), execErr.PC)
	assert.Equal(t, uint16(0x0123), execErr.Opcode)
	assert.Equal(t, uint16(0x200), c.PC())
}

func TestTrace(t *testing.T) {
	var seen []string
	c := NewChip8(nil, nil, WithTrace(func(pc uint16, ins Instruction) {
		seen = append(seen, ins.String())
	}))
	assert.NoError(t, c.LoadProgram([]byte{0x60, 0x01, 0x00, 0xE0}))
	assert.NoError(t, c.ExecuteCPU(2))

	assert.Equal(t, []string{"LD V0, $01", "CLS"}, seen)
}

func TestFetchWrapsAtEndOfMemory(t *testing.T) {
	c := NewChip8(nil, nil)
	c.PositionProgramCounter(RamEnd)

	// 0xFFF holds 0x00 and 0x000 holds 0x00: 0x0000 is not a valid opcode.
	err := c.Step()
	assert.True(t, errors.Is(err, ErrIllegalOpcode))
	assert.Equal(t, RamEnd, c.PC())
}
