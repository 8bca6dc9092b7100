package input

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrInvalidKeyCode is returned when a key code outside 0x0..0xF is pressed.
var ErrInvalidKeyCode = errors.New("invalid key code")

const noKey int32 = -1

// Latch holds the most recently pressed keypad key, or none.
// It is safe to press from one goroutine while the VM reads from another.
type Latch struct {
	key atomic.Int32
}

// NewLatch returns a latch with no key pressed.
func NewLatch() *Latch {
	l := &Latch{}
	l.key.Store(noKey)
	return l
}

// Read returns the latched key and true, or false when no key is pressed.
func (l *Latch) Read() (uint8, bool) {
	k := l.key.Load()
	if k == noKey {
		return 0, false
	}
	return uint8(k), true
}

// Press latches key, replacing any previously pressed key.
func (l *Latch) Press(key uint8) error {
	if key > 0xF {
		return fmt.Errorf("%w: 0x%X", ErrInvalidKeyCode, key)
	}
	l.key.Store(int32(key))
	return nil
}

// Release clears the latch.
func (l *Latch) Release() {
	l.key.Store(noKey)
}

// ReleaseKey clears the latch only if key is the one currently latched,
// so releasing an older key doesn't drop a newer press.
func (l *Latch) ReleaseKey(key uint8) {
	l.key.CompareAndSwap(int32(key), noKey)
}
