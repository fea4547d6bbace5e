package chip8

// TickTimers counts both timers down by one, stopping at zero. It is meant to
// be called at 60 Hz regardless of the instruction rate.
func (c *Chip8) TickTimers() {
	if c.dt > 0 {
		c.dt--
	}

	if c.st > 0 {
		c.st--
		if c.st == 0 && c.soundStop != nil {
			c.soundStop()
		}
	}
}
