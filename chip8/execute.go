package chip8

func (c *Chip8) execute(ins Instruction) error {
	switch ins.Op {
	case Opcode00E0:
		c.clearScreen()
	case Opcode00EE:
		return c.exitSubroutine()
	case Opcode1NNN:
		c.jumpToAddr(ins)
	case Opcode2NNN:
		return c.callSubroutine(ins)
	case Opcode3XNN:
		c.checkVxEqlNN(ins)
	case Opcode4XNN:
		c.checkVxNotEqlNN(ins)
	case Opcode5XY0:
		c.checkVxEqlVy(ins)
	case Opcode6XNN:
		c.setVxToNN(ins)
	case Opcode7XNN:
		c.addAssignToVx(ins)
	case Opcode8XY0:
		c.setVxToVy(ins)
	case Opcode8XY1:
		c.bitwiseORAssignVxToVy(ins)
	case Opcode8XY2:
		c.bitwiseANDAssignVxToVy(ins)
	case Opcode8XY3:
		c.bitwiseXORAssignVxToVy(ins)
	case Opcode8XY4:
		c.addAssignVyToVx(ins)
	case Opcode8XY5:
		c.subAssignVyToVx(ins)
	case Opcode8XY6:
		c.rightShiftVxBy1(ins)
	case Opcode8XY7:
		c.setVxToVySubVx(ins)
	case Opcode8XYE:
		c.leftShiftVxBy1(ins)
	case Opcode9XY0:
		c.checkVxNotEqlVy(ins)
	case OpcodeANNN:
		c.setIReg(ins)
	case OpcodeBNNN:
		c.pcJump(ins)
	case OpcodeCXNN:
		c.setVxToRand(ins)
	case OpcodeDXYN:
		c.drawSprite(ins)
	case OpcodeEX9E:
		c.keyOpEqlCheck(ins)
	case OpcodeEXA1:
		c.keyOpNotEqlCheck(ins)
	case OpcodeFX07:
		c.setVxToDelayTimer(ins)
	case OpcodeFX0A:
		c.setVxToKeyPress(ins)
	case OpcodeFX15:
		c.setDelayTimerToVx(ins)
	case OpcodeFX18:
		c.setSoundTimerToVx(ins)
	case OpcodeFX1E:
		c.addAssignVxToI(ins)
	case OpcodeFX29:
		c.setIToSpriteAddrVx(ins)
	case OpcodeFX33:
		c.storeBCDToI(ins)
	case OpcodeFX55:
		c.regDump(ins)
	case OpcodeFX65:
		c.regLoad(ins)
	default:
		return ErrIllegalOpcode
	}
	return nil
}

func (c *Chip8) clearScreen() {
	c.display.Clear()
}

func (c *Chip8) exitSubroutine() error {
	if c.sp == 0 {
		return ErrStackUnderflow
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

func (c *Chip8) jumpToAddr(ins Instruction) {
	c.pc = ins.NNN
}

// callSubroutine pushes the return address and sets PC to NNN.
func (c *Chip8) callSubroutine(ins Instruction) error {
	if int(c.sp) >= StackSize {
		return ErrStackOverflow
	}
	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = ins.NNN
	return nil
}

func (c *Chip8) skip() {
	c.pc += 2
}

// checkVxEqlNN skips the next instruction if Vx equals NN
func (c *Chip8) checkVxEqlNN(ins Instruction) {
	if c.vx[ins.X] == ins.KK {
		c.skip()
	}
}

// checkVxNotEqlNN skips the next instruction if Vx does not equal NN
func (c *Chip8) checkVxNotEqlNN(ins Instruction) {
	if c.vx[ins.X] != ins.KK {
		c.skip()
	}
}

// checkVxEqlVy skips the next instruction if Vx equals Vy
func (c *Chip8) checkVxEqlVy(ins Instruction) {
	if c.vx[ins.X] == c.vx[ins.Y] {
		c.skip()
	}
}

func (c *Chip8) setVxToNN(ins Instruction) {
	c.vx[ins.X] = ins.KK
}

func (c *Chip8) addAssignToVx(ins Instruction) {
	c.vx[ins.X] += ins.KK
}

func (c *Chip8) setVxToVy(ins Instruction) {
	c.vx[ins.X] = c.vx[ins.Y]
}

func (c *Chip8) bitwiseORAssignVxToVy(ins Instruction) {
	c.vx[ins.X] |= c.vx[ins.Y]
}

func (c *Chip8) bitwiseANDAssignVxToVy(ins Instruction) {
	c.vx[ins.X] &= c.vx[ins.Y]
}

func (c *Chip8) bitwiseXORAssignVxToVy(ins Instruction) {
	c.vx[ins.X] ^= c.vx[ins.Y]
}

// The flag is written after the result so that VF as a destination ends up
// holding the flag.

func (c *Chip8) addAssignVyToVx(ins Instruction) {
	sum := uint16(c.vx[ins.X]) + uint16(c.vx[ins.Y])
	c.vx[ins.X] = uint8(sum)
	c.vx[0xF] = boolToFlag(sum > 0xFF)
}

func (c *Chip8) subAssignVyToVx(ins Instruction) {
	x, y := c.vx[ins.X], c.vx[ins.Y]
	c.vx[ins.X] = x - y
	c.vx[0xF] = boolToFlag(x > y)
}

func (c *Chip8) rightShiftVxBy1(ins Instruction) {
	x := c.vx[ins.X]
	c.vx[ins.X] = x >> 1
	c.vx[0xF] = x & 0x1
}

func (c *Chip8) setVxToVySubVx(ins Instruction) {
	x, y := c.vx[ins.X], c.vx[ins.Y]
	c.vx[ins.X] = y - x
	c.vx[0xF] = boolToFlag(y > x)
}

func (c *Chip8) leftShiftVxBy1(ins Instruction) {
	x := c.vx[ins.X]
	c.vx[ins.X] = x << 1
	c.vx[0xF] = x >> 7
}

func (c *Chip8) checkVxNotEqlVy(ins Instruction) {
	if c.vx[ins.X] != c.vx[ins.Y] {
		c.skip()
	}
}

func (c *Chip8) setIReg(ins Instruction) {
	c.i = ins.NNN
}

func (c *Chip8) pcJump(ins Instruction) {
	c.pc = uint16(c.vx[0]) + ins.NNN
}

func (c *Chip8) setVxToRand(ins Instruction) {
	c.vx[ins.X] = uint8(c.rng.Intn(256)) & ins.KK
}

func (c *Chip8) drawSprite(ins Instruction) {
	rows := make([]byte, ins.N)
	for j := range rows {
		rows[j] = c.read(c.i + uint16(j))
	}

	collided := c.display.DrawSprite(rows, int(c.vx[ins.X]), int(c.vx[ins.Y]))
	c.vx[0xF] = boolToFlag(collided)
}

func (c *Chip8) keyOpEqlCheck(ins Instruction) {
	if c.keypad.IsPressed(c.vx[ins.X]) {
		c.skip()
	}
}

func (c *Chip8) keyOpNotEqlCheck(ins Instruction) {
	if !c.keypad.IsPressed(c.vx[ins.X]) {
		c.skip()
	}
}

func (c *Chip8) setVxToDelayTimer(ins Instruction) {
	c.vx[ins.X] = c.dt
}

// setVxToKeyPress re-executes itself until a key is down.
func (c *Chip8) setVxToKeyPress(ins Instruction) {
	key, ok := c.keypad.FirstPressed()
	if !ok {
		c.pc -= 2
		return
	}
	c.vx[ins.X] = key
}

func (c *Chip8) setDelayTimerToVx(ins Instruction) {
	c.dt = c.vx[ins.X]
}

func (c *Chip8) setSoundTimerToVx(ins Instruction) {
	c.st = c.vx[ins.X]
}

func (c *Chip8) addAssignVxToI(ins Instruction) {
	c.i += uint16(c.vx[ins.X])
}

func (c *Chip8) setIToSpriteAddrVx(ins Instruction) {
	c.i = fontAddr(c.vx[ins.X])
}

func (c *Chip8) storeBCDToI(ins Instruction) {
	val := c.vx[ins.X]

	c.write(c.i, val/100)
	c.write(c.i+1, (val/10)%10)
	c.write(c.i+2, val%10)
}

func (c *Chip8) regDump(ins Instruction) {
	for n := uint16(0); n <= uint16(ins.X); n++ {
		c.write(c.i+n, c.vx[n])
	}
}

func (c *Chip8) regLoad(ins Instruction) {
	for n := uint16(0); n <= uint16(ins.X); n++ {
		c.vx[n] = c.read(c.i + n)
	}
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
