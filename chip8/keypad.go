package chip8

import "sync/atomic"

// Keypad latches the state of the 16 hexadecimal keys. It is written by the
// host input layer and only read by the CPU.
type Keypad struct {
	keys [16]atomic.Bool
}

func NewKeypad() *Keypad {
	return &Keypad{}
}

func (k *Keypad) Press(key byte) {
	k.keys[key&0xF].Store(true)
}

func (k *Keypad) Release(key byte) {
	k.keys[key&0xF].Store(false)
}

// Set stores the state of a single key.
func (k *Keypad) Set(key byte, down bool) {
	k.keys[key&0xF].Store(down)
}

func (k *Keypad) IsPressed(key byte) bool {
	return k.keys[key&0xF].Load()
}

func (k *Keypad) AnyPressed() bool {
	_, ok := k.FirstPressed()
	return ok
}

// FirstPressed returns the lowest key code that is currently down.
func (k *Keypad) FirstPressed() (byte, bool) {
	for i := range k.keys {
		if k.keys[i].Load() {
			return byte(i), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	for i := range k.keys {
		k.keys[i].Store(false)
	}
}
