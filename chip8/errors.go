package chip8

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrCapacityExceeded is returned when a ROM does not fit between the
	// program start address and the end of memory.
	ErrCapacityExceeded = errors.New("rom exceeds memory capacity")

	// ErrSourceNotFound is returned when the ROM bytes could not be obtained.
	ErrSourceNotFound = errors.New("rom source not found")

	ErrIllegalOpcode  = errors.New("illegal opcode")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrStackOverflow  = errors.New("stack overflow")
)

// ExecError describes a failed instruction.
type ExecError struct {
	PC     uint16 // Address the instruction was fetched from.
	Opcode uint16 // Raw instruction word.
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%04x: %04x: %v", e.PC, e.Opcode, e.Err)
}

// Cause returns the underlying error for errors.Cause.
func (e *ExecError) Cause() error { return e.Err }

func (e *ExecError) Unwrap() error { return e.Err }
