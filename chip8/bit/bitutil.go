package bit

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte will be the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// CheckedAdd adds two 8 bit unsigned values and detects if an overflow happened.
func CheckedAdd(a, b uint8) (result uint8, overflow bool) {
	sum := uint16(a) + uint16(b)
	return uint8(sum), sum > 0xFF
}

// CheckedSub subtracts b from a and detects if a borrow happened,
// i.e. if a was smaller than b before wrapping.
func CheckedSub(a, b uint8) (result uint8, borrow bool) {
	return a - b, a < b
}

// IsSet will check if the bit at the specified index is set to 1 or not.
func IsSet(index, value uint8) bool {
	return ((value >> index) & 1) == 1
}

// GetBitValue returns a byte set to the value of the bit at the specified index.
func GetBitValue(index, value uint8) uint8 {
	return (value >> index) & 1
}

// Low returns the low (LSB) part of a 16 bit number.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high (MSB) part of a 16 bit number.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// Nibble returns the 4 bit field at the given position of a 16 bit word,
// position 0 being the least significant nibble.
func Nibble(value uint16, position uint8) uint8 {
	return uint8(value>>(position*4)) & 0x0F
}

// BCD splits value into its hundreds, tens and ones decimal digits.
func BCD(value uint8) (hundreds, tens, ones uint8) {
	return value / 100, (value / 10) % 10, value % 10
}
