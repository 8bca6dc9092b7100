package vm

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valerio/go-chip8/chip8/input"
)

// testClock is a manually advanced clock.
type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Unix(1_000_000, 0)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestVM returns a VM with program loaded at 0x200, a fresh latch, a
// frozen clock and a seeded random source.
func newTestVM(t *testing.T, program ...uint16) (*VM, *input.Latch, *testClock) {
	t.Helper()

	image := make([]byte, MemorySize)
	for i, op := range program {
		image[ProgramStart+2*i] = byte(op >> 8)
		image[ProgramStart+2*i+1] = byte(op)
	}

	latch := input.NewLatch()
	clock := newTestClock()
	v, err := New(image, latch, WithClock(clock.Now), WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	return v, latch, clock
}

// exec runs each opcode through Execute, failing the test on error.
func exec(t *testing.T, v *VM, opcodes ...uint16) {
	t.Helper()
	for _, op := range opcodes {
		require.NoErrorf(t, v.Execute(op), "opcode 0x%04X", op)
	}
}

func reg(t *testing.T, v *VM, i int) uint8 {
	t.Helper()
	value, err := v.GetRegister(i)
	require.NoError(t, err)
	return value
}

// preloadRegisters is the register fixture shared by most instruction tests.
func preloadRegisters(t *testing.T, v *VM) {
	t.Helper()
	exec(t, v,
		0x6064, // V0 = 0x64
		0x6127, // V1 = 0x27
		0x6212, // V2 = 0x12
		0x63AE, // V3 = 0xAE
		0x64FF, // V4 = 0xFF
		0x65B4, // V5 = 0xB4
		0x6642, // V6 = 0x42
		0x6F25, // VF = 0x25
	)
}
