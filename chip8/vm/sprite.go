package vm

// draw XORs an 8xN sprite read from memory at I onto the framebuffer at
// (x, y). Coordinates wrap on both axes. VF is set when any lit pixel is
// turned off.
func (v *VM) draw(x, y, rows uint8) {
	v.v[flagRegister] = 0

	for i := uint8(0); i < rows; i++ {
		sprite := v.readByte(v.index + uint16(i))
		row := int(y) + int(i)

		previous := v.packedRow(int(x), row)
		v.writeRow(int(x), row, sprite)

		if sprite&previous != 0 {
			v.v[flagRegister] = 1
		}
	}
}

// pixelIndex returns the framebuffer offset of (x, y) after wrapping.
func pixelIndex(x, y int) int {
	return (x % ScreenWidth) + (y%ScreenHeight)*ScreenWidth
}

// packedRow reads 8 pixels starting at (x, y) as a byte, leftmost pixel in
// the most significant bit.
func (v *VM) packedRow(x, y int) uint8 {
	var packed uint8
	for i := 0; i < 8; i++ {
		packed |= v.framebuffer[pixelIndex(x+i, y)] << (7 - i)
	}
	return packed
}

// writeRow XORs the bits of sprite into the 8 pixels starting at (x, y).
func (v *VM) writeRow(x, y int, sprite uint8) {
	for i := 0; i < 8; i++ {
		v.framebuffer[pixelIndex(x+i, y)] ^= (sprite >> (7 - i)) & 1
	}
}
