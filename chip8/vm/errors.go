package vm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMemorySize is returned by New when the memory image isn't MemorySize bytes.
	ErrInvalidMemorySize = errors.New("invalid memory size")
	// ErrInvalidRegisterIndex is returned when a register outside V0..VF is requested.
	ErrInvalidRegisterIndex = errors.New("invalid register index")
	// ErrUnsupportedInstruction is matched by every *UnsupportedInstructionError.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
	// ErrStackOverflow is returned when a call nests deeper than StackSize.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned by a return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// UnsupportedInstructionError carries the raw opcode that failed to decode.
type UnsupportedInstructionError struct {
	Opcode uint16
}

func (e *UnsupportedInstructionError) Error() string {
	return fmt.Sprintf("instruction 0x%04X is not supported", e.Opcode)
}

func (e *UnsupportedInstructionError) Is(target error) bool {
	return target == ErrUnsupportedInstruction
}
