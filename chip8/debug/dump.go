package debug

import (
	"fmt"
	"io"
	"strings"

	"github.com/valerio/go-chip8/chip8/disasm"
)

const (
	dumpBefore = 8
	dumpAfter  = 8
)

// Dump writes a human readable report of data: registers, timers, the call
// stack and a disassembly window around pc. It is used as the crash report.
func Dump(w io.Writer, data *CompleteDebugData) error {
	if data == nil || data.CPU == nil {
		_, err := io.WriteString(w, "no debug data available\n")
		return err
	}

	var b strings.Builder
	cpu := data.CPU

	fmt.Fprintf(&b, "state: %s\n", data.DebuggerState)
	if data.Err != nil {
		fmt.Fprintf(&b, "error: %v\n", data.Err)
	}
	fmt.Fprintf(&b, "PC: 0x%03X  I: 0x%03X  SP: %d  DT: %d  ST: %d  cycles: %d\n",
		cpu.PC, cpu.I, cpu.SP, cpu.DelayTimer, cpu.SoundTimer, cpu.Cycles)

	b.WriteString(FormatRegisters(cpu))

	b.WriteString("stack:")
	if cpu.SP == 0 {
		b.WriteString(" empty")
	}
	for i := 0; i < int(cpu.SP) && i < len(cpu.Stack); i++ {
		fmt.Fprintf(&b, " 0x%03X", cpu.Stack[i])
	}
	b.WriteString("\n")

	if data.Memory != nil && len(data.Memory.Bytes) > 0 {
		b.WriteString("disassembly:\n")
		for _, line := range disasm.DisassembleAround(data.Memory.Bytes, cpu.PC, dumpBefore, dumpAfter) {
			b.WriteString(disasm.FormatLine(line, line.Address == cpu.PC))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// FormatRegisters renders V0..VF as four rows of four.
func FormatRegisters(cpu *CPUState) string {
	var b strings.Builder
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			i := row*4 + col
			if col > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "V%X: 0x%02X", i, cpu.V[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}
