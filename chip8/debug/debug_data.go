package debug

import (
	"github.com/valerio/go-chip8/chip8/vm"
)

// CPUState contains all VM register information for debugging
type CPUState struct {
	V          [vm.RegisterCount]uint8
	I          uint16
	PC         uint16
	SP         uint8
	Stack      [vm.StackSize]uint16
	DelayTimer uint8
	SoundTimer uint8
	Cycles     uint64
}

// MemorySnapshot contains a snapshot of memory for disassembly
type MemorySnapshot struct {
	StartAddr uint16
	Bytes     []uint8
}

// DebuggerState represents the current run state as seen by debug displays
type DebuggerState int

const (
	DebuggerRunning DebuggerState = iota
	DebuggerPaused
	DebuggerStepInstruction
	DebuggerCrashed
	DebuggerStopped
)

func (s DebuggerState) String() string {
	switch s {
	case DebuggerRunning:
		return "RUNNING"
	case DebuggerPaused:
		return "PAUSED"
	case DebuggerStepInstruction:
		return "STEP"
	case DebuggerCrashed:
		return "CRASHED"
	case DebuggerStopped:
		return "STOPPED"
	}
	return "UNKNOWN"
}

// CompleteDebugData contains all debug information needed by debug displays
type CompleteDebugData struct {
	CPU           *CPUState
	Memory        *MemorySnapshot
	DebuggerState DebuggerState
	Key           uint8
	KeyPressed    bool
	Err           error // the error that crashed the VM, if any
}

// KeyReader is the read side of the keypad latch.
type KeyReader interface {
	Read() (uint8, bool)
}

// ExtractCPUState copies the register file out of m.
func ExtractCPUState(m *vm.VM) *CPUState {
	return &CPUState{
		V:          m.GetRegisters(),
		I:          m.GetIndexRegister(),
		PC:         m.GetProgramCounter(),
		SP:         m.GetStackPointer(),
		Stack:      m.GetStack(),
		DelayTimer: m.GetDelayTimer(),
		SoundTimer: m.GetSoundTimer(),
		Cycles:     m.GetCycles(),
	}
}

// Extract builds a full debug snapshot of m. keys may be nil.
func Extract(m *vm.VM, keys KeyReader, state DebuggerState) *CompleteDebugData {
	data := &CompleteDebugData{
		CPU:           ExtractCPUState(m),
		Memory:        &MemorySnapshot{StartAddr: 0, Bytes: m.GetMemory()},
		DebuggerState: state,
	}
	if keys != nil {
		data.Key, data.KeyPressed = keys.Read()
	}
	return data
}
