package disasm

import (
	"fmt"

	"github.com/valerio/go-chip8/chip8/bit"
	"github.com/valerio/go-chip8/chip8/vm"
)

// InstructionSize is the width of every CHIP-8 instruction in bytes.
const InstructionSize = 2

// Line is a single disassembled instruction.
type Line struct {
	Address     uint16
	Opcode      uint16
	Instruction string
}

// Disassemble renders a raw opcode in Cowgod's mnemonic syntax. Words that
// don't decode are rendered as data.
func Disassemble(opcode uint16) string {
	in, err := vm.Decode(opcode)
	if err != nil {
		return fmt.Sprintf("DW 0x%04X", opcode)
	}

	name := in.Op.String()
	switch in.Op {
	case vm.OpCLS, vm.OpRET:
		return name
	case vm.OpJP, vm.OpCALL:
		return fmt.Sprintf("%s 0x%03X", name, in.NNN)
	case vm.OpSEVxByte, vm.OpSNEVxByte, vm.OpLDVxByte, vm.OpADDVxByte, vm.OpRND:
		return fmt.Sprintf("%s V%X, 0x%02X", name, in.X, in.NN)
	case vm.OpSEVxVy, vm.OpSNEVxVy, vm.OpLDVxVy, vm.OpOR, vm.OpAND, vm.OpXOR,
		vm.OpADDVxVy, vm.OpSUB, vm.OpSUBN:
		return fmt.Sprintf("%s V%X, V%X", name, in.X, in.Y)
	case vm.OpSHR, vm.OpSHL:
		return fmt.Sprintf("%s V%X {, V%X}", name, in.X, in.Y)
	case vm.OpLDI:
		return fmt.Sprintf("LD I, 0x%03X", in.NNN)
	case vm.OpJPV0:
		return fmt.Sprintf("JP V0, 0x%03X", in.NNN)
	case vm.OpDRW:
		return fmt.Sprintf("DRW V%X, V%X, %d", in.X, in.Y, in.N)
	case vm.OpSKP, vm.OpSKNP:
		return fmt.Sprintf("%s V%X", name, in.X)
	case vm.OpLDVxDT:
		return fmt.Sprintf("LD V%X, DT", in.X)
	case vm.OpLDVxK:
		return fmt.Sprintf("LD V%X, K", in.X)
	case vm.OpLDDTVx:
		return fmt.Sprintf("LD DT, V%X", in.X)
	case vm.OpLDSTVx:
		return fmt.Sprintf("LD ST, V%X", in.X)
	case vm.OpADDIVx:
		return fmt.Sprintf("ADD I, V%X", in.X)
	case vm.OpLDFVx:
		return fmt.Sprintf("LD F, V%X", in.X)
	case vm.OpLDBVx:
		return fmt.Sprintf("LD B, V%X", in.X)
	}

	return fmt.Sprintf("DW 0x%04X", opcode)
}

// DisassembleAt disassembles the instruction at address. Addresses wrap
// within the memory slice.
func DisassembleAt(memory []byte, address uint16) Line {
	if len(memory) == 0 {
		return Line{Address: address, Instruction: "DW 0x0000"}
	}

	size := uint32(len(memory))
	high := memory[uint32(address)%size]
	low := memory[(uint32(address)+1)%size]
	opcode := bit.Combine(high, low)

	return Line{
		Address:     address,
		Opcode:      opcode,
		Instruction: Disassemble(opcode),
	}
}

// DisassembleRange disassembles count consecutive instructions from start.
func DisassembleRange(memory []byte, start uint16, count int) []Line {
	lines := make([]Line, 0, count)
	address := start
	for i := 0; i < count; i++ {
		lines = append(lines, DisassembleAt(memory, address))
		address += InstructionSize
	}
	return lines
}

// DisassembleAround returns up to before instructions preceding pc, the one
// at pc, and after instructions following it. The window never starts below
// address 0 so it keeps pc's alignment.
func DisassembleAround(memory []byte, pc uint16, before, after int) []Line {
	back := uint16(before * InstructionSize)
	if back > pc {
		back = pc - pc%InstructionSize
	}
	start := pc - back
	count := int(back)/InstructionSize + 1 + after

	return DisassembleRange(memory, start, count)
}

// FormatLine formats a line for display, marking the current pc.
func FormatLine(line Line, isCurrentPC bool) string {
	prefix := " "
	if isCurrentPC {
		prefix = "→"
	}
	return fmt.Sprintf("%s0x%03X: %04X  %s", prefix, line.Address, line.Opcode, line.Instruction)
}
