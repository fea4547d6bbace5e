package chip8

import "fmt"

// Opcode identifies one of the decodable instruction forms.
type Opcode uint8

const (
	OpIllegal Opcode = iota
	Opcode00E0
	Opcode00EE
	Opcode1NNN
	Opcode2NNN
	Opcode3XNN
	Opcode4XNN
	Opcode5XY0
	Opcode6XNN
	Opcode7XNN
	Opcode8XY0
	Opcode8XY1
	Opcode8XY2
	Opcode8XY3
	Opcode8XY4
	Opcode8XY5
	Opcode8XY6
	Opcode8XY7
	Opcode8XYE
	Opcode9XY0
	OpcodeANNN
	OpcodeBNNN
	OpcodeCXNN
	OpcodeDXYN
	OpcodeEX9E
	OpcodeEXA1
	OpcodeFX07
	OpcodeFX0A
	OpcodeFX15
	OpcodeFX18
	OpcodeFX1E
	OpcodeFX29
	OpcodeFX33
	OpcodeFX55
	OpcodeFX65
)

// Instruction is a decoded instruction word with all operand fields extracted.
type Instruction struct {
	Op  Opcode
	Raw uint16

	X   uint8  // bits 8-11
	Y   uint8  // bits 4-7
	N   uint8  // bits 0-3
	KK  uint8  // bits 0-7
	NNN uint16 // bits 0-11
}

// Decode splits a raw opcode into its fields and identifies the instruction.
// An unknown word yields ErrIllegalOpcode together with the extracted fields.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Raw: opcode,
		X:   uint8((opcode & 0x0F00) >> 8),
		Y:   uint8((opcode & 0x00F0) >> 4),
		N:   uint8(opcode & 0x000F),
		KK:  uint8(opcode & 0x00FF),
		NNN: opcode & 0x0FFF,
	}
	ins.Op = decodeOp(opcode)
	if ins.Op == OpIllegal {
		return ins, ErrIllegalOpcode
	}
	return ins, nil
}

func decodeOp(opcode uint16) Opcode {
	switch opcode & 0xF000 { // Mask the first 4 bits
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return Opcode00E0
		case 0x00EE:
			return Opcode00EE
		}
	case 0x1000:
		return Opcode1NNN
	case 0x2000:
		return Opcode2NNN
	case 0x3000:
		return Opcode3XNN
	case 0x4000:
		return Opcode4XNN
	case 0x5000:
		return Opcode5XY0
	case 0x6000:
		return Opcode6XNN
	case 0x7000:
		return Opcode7XNN
	case 0x8000:
		switch opcode & 0x000F {
		case 0x0000:
			return Opcode8XY0
		case 0x0001:
			return Opcode8XY1
		case 0x0002:
			return Opcode8XY2
		case 0x0003:
			return Opcode8XY3
		case 0x0004:
			return Opcode8XY4
		case 0x0005:
			return Opcode8XY5
		case 0x0006:
			return Opcode8XY6
		case 0x0007:
			return Opcode8XY7
		case 0x000E:
			return Opcode8XYE
		}
	case 0x9000:
		return Opcode9XY0
	case 0xA000:
		return OpcodeANNN
	case 0xB000:
		return OpcodeBNNN
	case 0xC000:
		return OpcodeCXNN
	case 0xD000:
		return OpcodeDXYN
	case 0xE000:
		switch opcode & 0x00FF {
		case 0x009E:
			return OpcodeEX9E
		case 0x00A1:
			return OpcodeEXA1
		}
	case 0xF000:
		switch opcode & 0x00FF {
		case 0x0007:
			return OpcodeFX07
		case 0x000A:
			return OpcodeFX0A
		case 0x0015:
			return OpcodeFX15
		case 0x0018:
			return OpcodeFX18
		case 0x001E:
			return OpcodeFX1E
		case 0x0029:
			return OpcodeFX29
		case 0x0033:
			return OpcodeFX33
		case 0x0055:
			return OpcodeFX55
		case 0x0065:
			return OpcodeFX65
		}
	}

	return OpIllegal
}

// String returns the assembler mnemonic of the instruction.
func (ins Instruction) String() string {
	switch ins.Op {
	case Opcode00E0:
		return "CLS"
	case Opcode00EE:
		return "RET"
	case Opcode1NNN:
		return fmt.Sprintf("JP $%03X", ins.NNN)
	case Opcode2NNN:
		return fmt.Sprintf("CALL $%03X", ins.NNN)
	case Opcode3XNN:
		return fmt.Sprintf("SE V%X, $%02X", ins.X, ins.KK)
	case Opcode4XNN:
		return fmt.Sprintf("SNE V%X, $%02X", ins.X, ins.KK)
	case Opcode5XY0:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case Opcode6XNN:
		return fmt.Sprintf("LD V%X, $%02X", ins.X, ins.KK)
	case Opcode7XNN:
		return fmt.Sprintf("ADD V%X, $%02X", ins.X, ins.KK)
	case Opcode8XY0:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case Opcode8XY1:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case Opcode8XY2:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case Opcode8XY3:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case Opcode8XY4:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case Opcode8XY5:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case Opcode8XY6:
		return fmt.Sprintf("SHR V%X", ins.X)
	case Opcode8XY7:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case Opcode8XYE:
		return fmt.Sprintf("SHL V%X", ins.X)
	case Opcode9XY0:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case OpcodeANNN:
		return fmt.Sprintf("LD I, $%03X", ins.NNN)
	case OpcodeBNNN:
		return fmt.Sprintf("JP V0, $%03X", ins.NNN)
	case OpcodeCXNN:
		return fmt.Sprintf("RND V%X, $%02X", ins.X, ins.KK)
	case OpcodeDXYN:
		return fmt.Sprintf("DRW V%X, V%X, %d", ins.X, ins.Y, ins.N)
	case OpcodeEX9E:
		return fmt.Sprintf("SKP V%X", ins.X)
	case OpcodeEXA1:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case OpcodeFX07:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case OpcodeFX0A:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case OpcodeFX15:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case OpcodeFX18:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case OpcodeFX1E:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case OpcodeFX29:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case OpcodeFX33:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case OpcodeFX55:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case OpcodeFX65:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}
	return fmt.Sprintf("DW $%04X", ins.Raw)
}
