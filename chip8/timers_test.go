package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTickTimersFloor(t *testing.T) {
	c := NewChip8(nil, nil)

	c.TickTimers()
	assert.Equal(t, uint8(0), c.DelayTimer())
	assert.Equal(t, uint8(0), c.SoundTimer())
}

func TestTickTimersSoundStop(t *testing.T) {
	stops := 0
	c := NewChip8(nil, nil, WithSoundStop(func() { stops++ }))
	assert.NoError(t, c.LoadProgram([]byte{0x60, 0x02, 0xF0, 0x18, 0xF0, 0x15}))
	assert.NoError(t, c.ExecuteCPU(3))
	assert.True(t, c.SoundActive())

	c.TickTimers()
	assert.Equal(t, uint8(1), c.SoundTimer())
	assert.Equal(t, 0, stops)

	c.TickTimers()
	assert.Equal(t, uint8(0), c.SoundTimer())
	assert.Equal(t, uint8(0), c.DelayTimer())
	assert.False(t, c.SoundActive())
	assert.Equal(t, 1, stops)

	c.TickTimers()
	assert.Equal(t, 1, stops)
}
