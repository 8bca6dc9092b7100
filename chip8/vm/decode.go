package vm

import "github.com/valerio/go-chip8/chip8/bit"

// Op identifies a decoded instruction class.
type Op uint8

const (
	OpInvalid Op = iota
	OpCLS        // 00E0
	OpRET        // 00EE
	OpJP         // 1NNN
	OpCALL       // 2NNN
	OpSEVxByte   // 3XNN
	OpSNEVxByte  // 4XNN
	OpSEVxVy     // 5XY0
	OpLDVxByte   // 6XNN
	OpADDVxByte  // 7XNN
	OpLDVxVy     // 8XY0
	OpOR         // 8XY1
	OpAND        // 8XY2
	OpXOR        // 8XY3
	OpADDVxVy    // 8XY4
	OpSUB        // 8XY5
	OpSHR        // 8XY6
	OpSUBN       // 8XY7
	OpSHL        // 8XYE
	OpSNEVxVy    // 9XY0
	OpLDI        // ANNN
	OpJPV0       // BNNN
	OpRND        // CXNN
	OpDRW        // DXYN
	OpSKP        // EX9E
	OpSKNP       // EXA1
	OpLDVxDT     // FX07
	OpLDVxK      // FX0A
	OpLDDTVx     // FX15
	OpLDSTVx     // FX18
	OpADDIVx     // FX1E
	OpLDFVx      // FX29
	OpLDBVx      // FX33
)

var opNames = [...]string{
	OpInvalid:   "???",
	OpCLS:       "CLS",
	OpRET:       "RET",
	OpJP:        "JP",
	OpCALL:      "CALL",
	OpSEVxByte:  "SE",
	OpSNEVxByte: "SNE",
	OpSEVxVy:    "SE",
	OpLDVxByte:  "LD",
	OpADDVxByte: "ADD",
	OpLDVxVy:    "LD",
	OpOR:        "OR",
	OpAND:       "AND",
	OpXOR:       "XOR",
	OpADDVxVy:   "ADD",
	OpSUB:       "SUB",
	OpSHR:       "SHR",
	OpSUBN:      "SUBN",
	OpSHL:       "SHL",
	OpSNEVxVy:   "SNE",
	OpLDI:       "LD",
	OpJPV0:      "JP",
	OpRND:       "RND",
	OpDRW:       "DRW",
	OpSKP:       "SKP",
	OpSKNP:      "SKNP",
	OpLDVxDT:    "LD",
	OpLDVxK:     "LD",
	OpLDDTVx:    "LD",
	OpLDSTVx:    "LD",
	OpADDIVx:    "ADD",
	OpLDFVx:     "LD",
	OpLDBVx:     "LD",
}

// String returns the instruction mnemonic.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return opNames[OpInvalid]
}

// Instruction is a decoded opcode with its operand fields extracted.
type Instruction struct {
	Op  Op
	Raw uint16
	X   uint8  // register selector, bits 8-11
	Y   uint8  // register selector, bits 4-7
	N   uint8  // 4 bit immediate, bits 0-3
	NN  uint8  // 8 bit immediate
	NNN uint16 // 12 bit address
}

// Decode parses a raw big-endian opcode into an Instruction.
// Opcodes outside the supported set, including the FX55/FX65 register block
// transfers, return an *UnsupportedInstructionError.
func Decode(opcode uint16) (Instruction, error) {
	in := Instruction{
		Raw: opcode,
		X:   bit.Nibble(opcode, 2),
		Y:   bit.Nibble(opcode, 1),
		N:   bit.Nibble(opcode, 0),
		NN:  bit.Low(opcode),
		NNN: opcode & 0x0FFF,
	}

	switch bit.Nibble(opcode, 3) {
	case 0x0:
		switch opcode {
		case 0x00E0:
			in.Op = OpCLS
		case 0x00EE:
			in.Op = OpRET
		}
	case 0x1:
		in.Op = OpJP
	case 0x2:
		in.Op = OpCALL
	case 0x3:
		in.Op = OpSEVxByte
	case 0x4:
		in.Op = OpSNEVxByte
	case 0x5:
		if in.N == 0x0 {
			in.Op = OpSEVxVy
		}
	case 0x6:
		in.Op = OpLDVxByte
	case 0x7:
		in.Op = OpADDVxByte
	case 0x8:
		in.Op = decodeALU(in.N)
	case 0x9:
		if in.N == 0x0 {
			in.Op = OpSNEVxVy
		}
	case 0xA:
		in.Op = OpLDI
	case 0xB:
		in.Op = OpJPV0
	case 0xC:
		in.Op = OpRND
	case 0xD:
		in.Op = OpDRW
	case 0xE:
		switch in.NN {
		case 0x9E:
			in.Op = OpSKP
		case 0xA1:
			in.Op = OpSKNP
		}
	case 0xF:
		in.Op = decodeMisc(in.NN)
	}

	if in.Op == OpInvalid {
		return in, &UnsupportedInstructionError{Opcode: opcode}
	}
	return in, nil
}

func decodeALU(n uint8) Op {
	switch n {
	case 0x0:
		return OpLDVxVy
	case 0x1:
		return OpOR
	case 0x2:
		return OpAND
	case 0x3:
		return OpXOR
	case 0x4:
		return OpADDVxVy
	case 0x5:
		return OpSUB
	case 0x6:
		return OpSHR
	case 0x7:
		return OpSUBN
	case 0xE:
		return OpSHL
	}
	return OpInvalid
}

// decodeMisc handles the FXNN group. FX55 and FX65 are left undecoded.
func decodeMisc(nn uint8) Op {
	switch nn {
	case 0x07:
		return OpLDVxDT
	case 0x0A:
		return OpLDVxK
	case 0x15:
		return OpLDDTVx
	case 0x18:
		return OpLDSTVx
	case 0x1E:
		return OpADDIVx
	case 0x29:
		return OpLDFVx
	case 0x33:
		return OpLDBVx
	}
	return OpInvalid
}
