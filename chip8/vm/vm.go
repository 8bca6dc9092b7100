package vm

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/valerio/go-chip8/chip8/audio"
	"github.com/valerio/go-chip8/chip8/bit"
	"github.com/valerio/go-chip8/chip8/input"
)

const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000
	// ProgramStart is where ROMs are loaded and execution begins.
	ProgramStart = 0x200
	// RegisterCount is the number of V registers.
	RegisterCount = 16
	// StackSize is the maximum call depth.
	StackSize = 16
	// ScreenWidth and ScreenHeight are the framebuffer dimensions in pixels.
	ScreenWidth  = 64
	ScreenHeight = 32
	// TimerPeriod is the delay/sound timer tick interval (60 Hz).
	TimerPeriod = time.Second / 60

	addressMask  = MemorySize - 1
	flagRegister = 0xF
)

// Keypad is the input latch read by the VM.
type Keypad interface {
	// Read returns the pressed key code (0x0..0xF) and true, or false when
	// no key is pressed.
	Read() (uint8, bool)
}

// VM holds the complete CHIP-8 machine state. It is not safe for concurrent
// use, except for the Keypad which may be written from another goroutine.
type VM struct {
	memory      [MemorySize]byte
	v           [RegisterCount]uint8
	index       uint16
	pc          uint16
	stack       [StackSize]uint16
	sp          uint8
	framebuffer [ScreenWidth * ScreenHeight]byte

	delayTimer uint8
	soundTimer uint8
	nextTick   time.Time

	keys   Keypad
	clock  func() time.Time
	random *rand.Rand

	cycles uint64
}

// Option configures a VM.
type Option func(*VM)

// WithClock replaces the wall clock sampled for timer ticks.
func WithClock(clock func() time.Time) Option {
	return func(v *VM) {
		v.clock = clock
	}
}

// WithRand replaces the random source used by CXNN.
func WithRand(r *rand.Rand) Option {
	return func(v *VM) {
		v.random = r
	}
}

// New returns a VM with its memory initialised from image, which must be
// exactly MemorySize bytes. The font is written over the first 80 bytes.
// The image is copied, the caller keeps ownership of the slice.
func New(image []byte, keys Keypad, opts ...Option) (*VM, error) {
	if len(image) != MemorySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidMemorySize, len(image), MemorySize)
	}

	if keys == nil {
		keys = input.NewLatch()
	}

	v := &VM{
		pc:    ProgramStart,
		keys:  keys,
		clock: time.Now,
	}
	copy(v.memory[:], image)
	copy(v.memory[:], Font[:])

	for _, opt := range opts {
		opt(v)
	}
	if v.random == nil {
		v.random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return v, nil
}

// Cycle runs a single fetch-decode-execute step. The returned signal is the
// tone state requested by the sound timer, or audio.SignalNone when no timer
// tick was due. An error leaves the VM in the state reached so far and should
// be treated as fatal by the caller.
func (v *VM) Cycle() (audio.Signal, error) {
	v.cycles++

	opcode := v.fetch()
	v.pc += 2

	signal := v.tickTimers(v.clock())

	return signal, v.Execute(opcode)
}

// Execute decodes and runs a single opcode against the current state,
// without fetching or advancing the program counter.
func (v *VM) Execute(opcode uint16) error {
	in, err := Decode(opcode)
	if err != nil {
		return err
	}
	return v.execute(in)
}

// fetch reads the big-endian opcode at PC.
func (v *VM) fetch() uint16 {
	return bit.Combine(v.readByte(v.pc), v.readByte(v.pc+1))
}

// readByte and writeByte wrap addresses into the 4K address space.
func (v *VM) readByte(address uint16) uint8 {
	return v.memory[address&addressMask]
}

func (v *VM) writeByte(address uint16, value uint8) {
	v.memory[address&addressMask] = value
}

func (v *VM) push(address uint16) error {
	if int(v.sp) >= StackSize {
		return fmt.Errorf("%w: call at 0x%03X", ErrStackOverflow, v.pc-2)
	}
	v.stack[v.sp] = address
	v.sp++
	return nil
}

func (v *VM) pop() (uint16, error) {
	if v.sp == 0 {
		return 0, fmt.Errorf("%w: return at 0x%03X", ErrStackUnderflow, v.pc-2)
	}
	v.sp--
	return v.stack[v.sp], nil
}

// GetRegister returns the value of register Vi.
func (v *VM) GetRegister(i int) (uint8, error) {
	if i < 0 || i >= RegisterCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRegisterIndex, i)
	}
	return v.v[i], nil
}

// GetRegisters returns a copy of V0..VF.
func (v *VM) GetRegisters() [RegisterCount]uint8 { return v.v }

func (v *VM) GetIndexRegister() uint16  { return v.index }
func (v *VM) GetProgramCounter() uint16 { return v.pc }
func (v *VM) GetDelayTimer() uint8      { return v.delayTimer }
func (v *VM) GetSoundTimer() uint8      { return v.soundTimer }
func (v *VM) GetStackPointer() uint8    { return v.sp }
func (v *VM) GetCycles() uint64         { return v.cycles }

// GetStack returns a copy of the call stack.
func (v *VM) GetStack() [StackSize]uint16 { return v.stack }

// GetFramebuffer returns a copy of the 64x32 framebuffer, one byte (0 or 1)
// per pixel, row-major.
func (v *VM) GetFramebuffer() []byte {
	fb := make([]byte, len(v.framebuffer))
	copy(fb, v.framebuffer[:])
	return fb
}

// GetMemory returns a copy of the 4K memory.
func (v *VM) GetMemory() []byte {
	mem := make([]byte, len(v.memory))
	copy(mem, v.memory[:])
	return mem
}

// ReadMemory returns the byte at address without copying the whole memory.
func (v *VM) ReadMemory(address uint16) uint8 {
	return v.readByte(address)
}

// ClearFramebuffer turns every pixel off.
func (v *VM) ClearFramebuffer() {
	v.framebuffer = [ScreenWidth * ScreenHeight]byte{}
}
