package vm

import "github.com/valerio/go-chip8/chip8/bit"

// execute runs a decoded instruction. PC has already been advanced past it.
func (v *VM) execute(in Instruction) error {
	x, y := in.X, in.Y

	switch in.Op {
	case OpCLS:
		v.ClearFramebuffer()

	case OpRET:
		address, err := v.pop()
		if err != nil {
			return err
		}
		v.pc = address

	case OpJP:
		v.pc = in.NNN

	case OpCALL:
		if err := v.push(v.pc); err != nil {
			return err
		}
		v.pc = in.NNN

	case OpSEVxByte:
		v.skipIf(v.v[x] == in.NN)

	case OpSNEVxByte:
		v.skipIf(v.v[x] != in.NN)

	case OpSEVxVy:
		v.skipIf(v.v[x] == v.v[y])

	case OpLDVxByte:
		v.v[x] = in.NN

	case OpADDVxByte:
		v.v[x] += in.NN

	case OpLDVxVy:
		v.v[x] = v.v[y]

	case OpOR:
		v.v[x] |= v.v[y]

	case OpAND:
		v.v[x] &= v.v[y]

	case OpXOR:
		v.v[x] ^= v.v[y]

	case OpADDVxVy:
		result, carry := bit.CheckedAdd(v.v[x], v.v[y])
		v.v[x] = result
		v.setFlag(carry)

	case OpSUB:
		result, borrow := bit.CheckedSub(v.v[x], v.v[y])
		v.v[x] = result
		v.setFlag(!borrow)

	case OpSHR:
		vx := v.v[x]
		v.v[flagRegister] = bit.GetBitValue(0, vx)
		v.v[x] = vx >> 1

	case OpSUBN:
		result, borrow := bit.CheckedSub(v.v[y], v.v[x])
		v.v[x] = result
		v.setFlag(!borrow)

	case OpSHL:
		vx := v.v[x]
		v.v[flagRegister] = bit.GetBitValue(7, vx)
		v.v[x] = vx << 1

	case OpSNEVxVy:
		v.skipIf(v.v[x] != v.v[y])

	case OpLDI:
		v.index = in.NNN

	case OpJPV0:
		v.pc = in.NNN + uint16(v.v[0])

	case OpRND:
		v.v[x] = uint8(v.random.Intn(0x100)) & in.NN

	case OpDRW:
		v.draw(v.v[x], v.v[y], in.N)

	case OpSKP:
		key, ok := v.keys.Read()
		v.skipIf(ok && key == v.v[x])

	case OpSKNP:
		key, ok := v.keys.Read()
		v.skipIf(!ok || key != v.v[x])

	case OpLDVxDT:
		v.v[x] = v.delayTimer

	case OpLDVxK:
		key, ok := v.keys.Read()
		if !ok {
			// no key yet, run this instruction again on the next cycle
			v.pc -= 2
			return nil
		}
		v.v[x] = key

	case OpLDDTVx:
		v.delayTimer = v.v[x]

	case OpLDSTVx:
		v.soundTimer = v.v[x]

	case OpADDIVx:
		v.index += uint16(v.v[x])

	case OpLDFVx:
		v.index = uint16(v.v[x]) * GlyphSize

	case OpLDBVx:
		hundreds, tens, ones := bit.BCD(v.v[x])
		v.writeByte(v.index, hundreds)
		v.writeByte(v.index+1, tens)
		v.writeByte(v.index+2, ones)

	default:
		return &UnsupportedInstructionError{Opcode: in.Raw}
	}

	return nil
}

// skipIf skips the next instruction when condition holds.
func (v *VM) skipIf(condition bool) {
	if condition {
		v.pc += 2
	}
}

// setFlag writes 1 or 0 to VF. It must run after the result register is
// written so that VF wins when X is F.
func (v *VM) setFlag(condition bool) {
	if condition {
		v.v[flagRegister] = 1
		return
	}
	v.v[flagRegister] = 0
}
