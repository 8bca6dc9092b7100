package chip8

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/vm"
)

// program encodes opcodes big-endian.
func program(opcodes ...uint16) []byte {
	out := make([]byte, 0, len(opcodes)*2)
	for _, op := range opcodes {
		out = append(out, byte(op>>8), byte(op))
	}
	return out
}

// steppingClock moves forward by step on every read, so every cycle is a
// timer tick when step exceeds vm.TimerPeriod.
type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func testConfig(cycles int) Config {
	cfg := DefaultConfig()
	cfg.CyclesPerFrame = cycles
	cfg.Seed = 1
	return cfg
}

func newTestEmulator(t *testing.T, cfg Config, opcodes ...uint16) *Emulator {
	t.Helper()

	image, err := NewImage(program(opcodes...))
	require.NoError(t, err)

	clock := &steppingClock{now: time.Unix(1_000_000, 0), step: vm.TimerPeriod + time.Nanosecond}
	e, err := New(image, nil, cfg, vm.WithClock(clock.Now))
	require.NoError(t, err)
	return e
}
