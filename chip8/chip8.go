// Package chip8 implements the CHIP-8 interpreter: memory, registers, call
// stack and timers, plus the framebuffer and keypad it drives.
package chip8

import (
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

const (
	RamStart     uint16 = 0x000
	RamFontStart uint16 = 0x050
	RamGameStart uint16 = 0x200
	RamEnd       uint16 = 0xFFF

	MemorySize = int(RamEnd) + 1
	StackSize  = 16
)

// TraceFunc receives every decoded instruction before it is executed.
type TraceFunc func(pc uint16, ins Instruction)

// Chip8 is the interpreter state. The display and keypad are shared with the
// host and only ever mutated through their own methods.
type Chip8 struct {
	// General Accessible Memory
	mainMemory [MemorySize]byte

	// General Purpose 8-Bit Registers (V0-VF)
	vx [16]uint8

	// Memory Address Store Register
	i uint16

	// Delay Timer Register
	dt uint8

	// Sound Timer Register
	st uint8

	// Program Counter
	pc uint16

	// Stack Pointer
	sp uint8

	stack [StackSize]uint16

	display *Display
	keypad  *Keypad

	rng       *rand.Rand
	logger    *log.Logger
	trace     TraceFunc
	soundStop func()
}

// Option configures a Chip8.
type Option func(*Chip8)

// WithLogger sets the logger used for load and trace messages.
func WithLogger(logger *log.Logger) Option {
	return func(c *Chip8) { c.logger = logger }
}

// WithRand sets the random source of the RND instruction.
func WithRand(rng *rand.Rand) Option {
	return func(c *Chip8) { c.rng = rng }
}

// WithTrace installs a handler that is called for every executed instruction.
func WithTrace(trace TraceFunc) Option {
	return func(c *Chip8) { c.trace = trace }
}

// WithSoundStop installs a handler that is called when the sound timer
// reaches zero.
func WithSoundStop(f func()) Option {
	return func(c *Chip8) { c.soundStop = f }
}

// NewChip8 creates an interpreter drawing to display and reading keypad.
// Nil collaborators are replaced by fresh ones.
func NewChip8(display *Display, keypad *Keypad, opts ...Option) *Chip8 {
	if display == nil {
		display = NewDisplay()
	}
	if keypad == nil {
		keypad = NewKeypad()
	}

	c := &Chip8{
		display: display,
		keypad:  keypad,
		pc:      RamGameStart,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// LoadFont writes the hexadecimal digit sprites to the font area.
func (c *Chip8) LoadFont() {
	copy(c.mainMemory[RamFontStart:], defaultSprites)
}

// LoadProgram copies rom to the program area and points PC at it.
// Nothing is written if the rom does not fit.
func (c *Chip8) LoadProgram(rom []byte) error {
	available := MemorySize - int(RamGameStart)
	if len(rom) > available {
		return errors.Wrapf(ErrCapacityExceeded, "rom is %d bytes, %d available", len(rom), available)
	}

	// dump rom into memory at game start position
	copy(c.mainMemory[RamGameStart:], rom)
	c.PositionProgramCounter(RamGameStart)

	if c.logger != nil {
		c.logger.Info("Program loaded",
			log.Uint16("size", uint16(len(rom))),
			log.Hex("start", RamGameStart))
	}
	return nil
}

// LoadProgramFrom reads a rom from r and loads it.
func (c *Chip8) LoadProgramFrom(r io.Reader) error {
	if r == nil {
		return ErrSourceNotFound
	}

	// one byte past capacity is enough to detect an oversized rom
	rom, err := io.ReadAll(io.LimitReader(r, int64(MemorySize)+1))
	if err != nil {
		return errors.Wrapf(ErrSourceNotFound, "reading rom: %v", err)
	}
	return c.LoadProgram(rom)
}

// Reset returns the machine to its power-on state with the font loaded and
// the screen cleared. The program has to be loaded again.
func (c *Chip8) Reset() {
	c.mainMemory = [MemorySize]byte{}
	c.vx = [16]uint8{}
	c.stack = [StackSize]uint16{}
	c.sp = 0
	c.i = 0
	c.dt = 0
	c.st = 0
	c.pc = RamGameStart
	c.display.Clear()
	c.LoadFont()
}

func (c *Chip8) PositionProgramCounter(pos uint16) {
	c.pc = pos
}

// ExecuteCPU runs the given number of instructions, stopping at the first error.
func (c *Chip8) ExecuteCPU(cyclesToExecute int) error {
	for i := 0; i < cyclesToExecute; i++ {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step fetches, decodes and executes a single instruction. On error the
// program counter is left at the failing instruction.
func (c *Chip8) Step() error {
	pc := c.pc
	opcode := c.fetch()

	ins, err := Decode(opcode)
	if err != nil {
		c.pc = pc
		return &ExecError{PC: pc, Opcode: opcode, Err: err}
	}

	if c.trace != nil {
		c.trace(pc, ins)
	}

	if err := c.execute(ins); err != nil {
		c.pc = pc
		return &ExecError{PC: pc, Opcode: opcode, Err: err}
	}
	return nil
}

func (c *Chip8) fetch() uint16 {
	defer func() {
		c.pc += 2
	}()

	return uint16(c.read(c.pc))<<8 | uint16(c.read(c.pc+1))
}

func (c *Chip8) read(addr uint16) byte {
	return c.mainMemory[addr&RamEnd]
}

func (c *Chip8) write(addr uint16, b byte) {
	c.mainMemory[addr&RamEnd] = b
}

func (c *Chip8) PC() uint16 { return c.pc }

func (c *Chip8) I() uint16 { return c.i }

// V returns register Vn.
func (c *Chip8) V(n int) uint8 { return c.vx[n&0xF] }

func (c *Chip8) DelayTimer() uint8 { return c.dt }

func (c *Chip8) SoundTimer() uint8 { return c.st }

// SoundActive reports whether the buzzer should currently sound.
func (c *Chip8) SoundActive() bool { return c.st > 0 }

// StackDepth returns the number of pending return addresses.
func (c *Chip8) StackDepth() int { return int(c.sp) }

// Memory returns a copy of the address space.
func (c *Chip8) Memory() []byte {
	buf := make([]byte, MemorySize)
	copy(buf, c.mainMemory[:])
	return buf
}

func (c *Chip8) Display() *Display { return c.display }

func (c *Chip8) Keypad() *Keypad { return c.keypad }
